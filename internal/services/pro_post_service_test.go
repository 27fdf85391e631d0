package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
	"github.com/rafabene/sunmile-backend/internal/services"
)

var _ = Describe("ProPostService", func() {
	var (
		e          *env
		ana, pedro *entities.Professional
	)

	BeforeEach(func() {
		e = newEnv()

		var err error
		ana, err = e.professionals.Register(e.ctx, professionalInput("dra.ana", "ana@example.com", cpfAna, "(11) 98888-7777", "CRO-1"))
		Expect(err).NotTo(HaveOccurred())
		pedro, err = e.professionals.Register(e.ctx, professionalInput("dr.pedro", "pedro@example.com", cpfPedro, "(21) 97777-6666", "CRM-2"))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Create", func() {
		It("publica em nome do profissional do chamador", func() {
			post, err := e.posts.Create(e.ctx, identityOf(ana.User), services.CreateProPostInput{
				Title:     " Clareamento ",
				Content:   "Antes e depois",
				ImageURLs: []string{"https://i.ibb.co/a.png", "https://i.ibb.co/b.png"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(post.ProfessionalID).To(Equal(ana.ID))
			Expect(post.Title).To(Equal("Clareamento"))

			stored, err := e.posts.Get(e.ctx, post.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.ImageURLs).To(Equal([]string{"https://i.ibb.co/a.png", "https://i.ibb.co/b.png"}))
			Expect(stored.Professional.User.Username).To(Equal("dra.ana"))
		})

		It("exige título e conteúdo", func() {
			_, err := e.posts.Create(e.ctx, identityOf(ana.User), services.CreateProPostInput{Title: "só título"})
			Expect(err).To(haveKind(domainerrors.KindValidation))
			Expect(err).To(haveMessage(domainerrors.ErrMissingPostFields))
		})

		It("usuário sem perfil profissional recebe Forbidden", func() {
			lucia, _ := e.users.Register(e.ctx, userInput("lucia", "lucia@example.com", cpfLucia))

			_, err := e.posts.Create(e.ctx, identityOf(lucia), services.CreateProPostInput{Title: "t", Content: "c"})
			Expect(err).To(haveKind(domainerrors.KindAuthorization))
			Expect(err).To(haveMessage(domainerrors.ErrProfessionalOnly))
		})
	})

	Describe("Update e Delete", func() {
		var post *entities.ProPost

		BeforeEach(func() {
			var err error
			post, err = e.posts.Create(e.ctx, identityOf(ana.User), services.CreateProPostInput{Title: "t", Content: "c"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("o dono altera o post", func() {
			updated, err := e.posts.Update(e.ctx, identityOf(ana.User), post.ID, entities.ProPostPatch{Title: ptr("novo")})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Title).To(Equal("novo"))
			Expect(updated.Content).To(Equal("c"))
		})

		It("não aceita título vazio", func() {
			_, err := e.posts.Update(e.ctx, identityOf(ana.User), post.ID, entities.ProPostPatch{Title: ptr("  ")})
			Expect(err).To(haveMessage(domainerrors.ErrMissingPostFields))
		})

		It("outro profissional não altera nem remove", func() {
			_, err := e.posts.Update(e.ctx, identityOf(pedro.User), post.ID, entities.ProPostPatch{Title: ptr("x")})
			Expect(err).To(haveKind(domainerrors.KindAuthorization))

			err = e.posts.Delete(e.ctx, identityOf(pedro.User), post.ID)
			Expect(err).To(haveKind(domainerrors.KindAuthorization))
		})

		It("admin remove post alheio", func() {
			admin := e.makeAdmin(pedro.User)
			Expect(e.posts.Delete(e.ctx, admin, post.ID)).To(Succeed())

			_, err := e.posts.Get(e.ctx, post.ID)
			Expect(err).To(haveKind(domainerrors.KindNotFound))
		})
	})
})
