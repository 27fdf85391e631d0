package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
	"github.com/rafabene/sunmile-backend/internal/services"
)

var _ = Describe("ProfessionalService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	Describe("Register", func() {
		It("cria usuário com role pro e o perfil vinculado", func() {
			pro, err := e.professionals.Register(e.ctx, professionalInput("dra.ana", "ana@example.com", cpfAna, "(11) 98888-7777", "CRO-SP 1234"))
			Expect(err).NotTo(HaveOccurred())
			Expect(pro.User).NotTo(BeNil())
			Expect(pro.User.Role).To(Equal(entities.RoleProfessional))
			Expect(pro.UserID).To(Equal(pro.User.ID))

			stored, err := e.professionals.Get(e.ctx, pro.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.User.Username).To(Equal("dra.ana"))
			Expect(stored.ProRegistration).To(Equal("CRO-SP 1234"))
		})

		It("exige telefone e registro além dos campos do usuário", func() {
			in := professionalInput("dra.ana", "ana@example.com", cpfAna, "", "")

			_, err := e.professionals.Register(e.ctx, in)
			Expect(err).To(haveMessage(domainerrors.ErrMissingFields))

			de, _ := domainerrors.As(err)
			Expect(de.Fields).To(Equal([]string{"phone_number", "pro_registration"}))
		})

		DescribeTable("conflitos",
			func(in services.RegisterProfessionalInput, id error) {
				_, err := e.professionals.Register(e.ctx, professionalInput("dra.ana", "ana@example.com", cpfAna, "(11) 98888-7777", "CRO-1"))
				Expect(err).NotTo(HaveOccurred())

				_, err = e.professionals.Register(e.ctx, in)
				Expect(err).To(haveKind(domainerrors.KindConflict))
				Expect(err).To(haveMessage(id))
			},
			Entry("email", professionalInput("pedro", "ANA@example.com", cpfPedro, "(11) 97777-6666", "CRM-2"), domainerrors.ErrEmailAlreadyExists),
			Entry("telefone", professionalInput("pedro", "pedro@example.com", cpfPedro, "(11) 98888-7777", "CRM-2"), domainerrors.ErrPhoneAlreadyExists),
			Entry("registro", professionalInput("pedro", "pedro@example.com", cpfPedro, "(11) 97777-6666", "CRO-1"), domainerrors.ErrRegistrationAlreadyExists),
		)

		It("conflita com um usuário comum já cadastrado", func() {
			_, err := e.users.Register(e.ctx, userInput("maria", "maria@example.com", cpfMaria))
			Expect(err).NotTo(HaveOccurred())

			_, err = e.professionals.Register(e.ctx, professionalInput("dra.maria", "outra@example.com", cpfMaria, "(11) 98888-7777", "CRO-1"))
			Expect(err).To(haveMessage(domainerrors.ErrCPFAlreadyExists))
		})

		It("não grava nada quando o formato do telefone é inválido", func() {
			_, err := e.professionals.Register(e.ctx, professionalInput("dra.ana", "ana@example.com", cpfAna, "11988887777", "CRO-1"))
			Expect(err).To(haveKind(domainerrors.KindValidation))
			Expect(err).To(haveMessage(domainerrors.ErrInvalidPhone))

			users, _ := e.users.List(e.ctx)
			Expect(users).To(BeEmpty())
			professionals, _ := e.professionals.List(e.ctx)
			Expect(professionals).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		var ana, pedro *entities.Professional

		BeforeEach(func() {
			var err error
			ana, err = e.professionals.Register(e.ctx, professionalInput("dra.ana", "ana@example.com", cpfAna, "(11) 98888-7777", "CRO-1"))
			Expect(err).NotTo(HaveOccurred())
			pedro, err = e.professionals.Register(e.ctx, professionalInput("dr.pedro", "pedro@example.com", cpfPedro, "(21) 97777-6666", "CRM-2"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("o dono altera bio e nome do usuário juntos", func() {
			bio := "Ortodontia"
			updated, err := e.professionals.Update(e.ctx, identityOf(ana.User), ana.ID, entities.ProfessionalPatch{
				Bio:  &bio,
				User: entities.UserPatch{Name: ptr("Ana Paula")},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Bio).To(Equal("Ortodontia"))

			stored, _ := e.professionals.Get(e.ctx, ana.ID)
			Expect(stored.Bio).To(Equal("Ortodontia"))
			Expect(stored.User.Name).To(Equal("Ana Paula"))
		})

		It("outro profissional recebe Forbidden", func() {
			bio := "invadido"
			_, err := e.professionals.Update(e.ctx, identityOf(pedro.User), ana.ID, entities.ProfessionalPatch{Bio: &bio})
			Expect(err).To(haveKind(domainerrors.KindAuthorization))
		})

		It("telefone de outro profissional resulta em conflito", func() {
			_, err := e.professionals.Update(e.ctx, identityOf(ana.User), ana.ID, entities.ProfessionalPatch{PhoneNumber: ptr("(21) 97777-6666")})
			Expect(err).To(haveMessage(domainerrors.ErrPhoneAlreadyExists))
		})

		It("admin altera qualquer perfil", func() {
			admin := e.makeAdmin(pedro.User)
			updated, err := e.professionals.Update(e.ctx, admin, ana.ID, entities.ProfessionalPatch{PhoneNumber: ptr("(11) 96666-5555")})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.PhoneNumber).To(Equal("(11) 96666-5555"))
		})
	})

	Describe("Delete", func() {
		It("remove também o usuário dono", func() {
			ana, err := e.professionals.Register(e.ctx, professionalInput("dra.ana", "ana@example.com", cpfAna, "(11) 98888-7777", "CRO-1"))
			Expect(err).NotTo(HaveOccurred())

			Expect(e.professionals.Delete(e.ctx, identityOf(ana.User), ana.ID)).To(Succeed())

			_, err = e.users.Get(e.ctx, ana.UserID)
			Expect(err).To(haveKind(domainerrors.KindNotFound))

			revoked, _ := e.revoked.IsRevoked(e.ctx, identityOf(ana.User).TokenID)
			Expect(revoked).To(BeTrue())
		})

		It("usuário comum não remove profissional alheio", func() {
			ana, _ := e.professionals.Register(e.ctx, professionalInput("dra.ana", "ana@example.com", cpfAna, "(11) 98888-7777", "CRO-1"))
			lucia, _ := e.users.Register(e.ctx, userInput("lucia", "lucia@example.com", cpfLucia))

			err := e.professionals.Delete(e.ctx, identityOf(lucia), ana.ID)
			Expect(err).To(haveKind(domainerrors.KindAuthorization))
		})
	})
})
