package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
)

var _ = Describe("AuthService", func() {
	var (
		e     *env
		maria *entities.User
	)

	BeforeEach(func() {
		e = newEnv()

		var err error
		maria, err = e.users.Register(e.ctx, userInput("maria", "maria@example.com", cpfMaria))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Login", func() {
		It("exige email e senha", func() {
			_, err := e.auth.Login(e.ctx, "", "Abcde1!")
			Expect(err).To(haveMessage(domainerrors.ErrMissingCredentials))
		})

		It("email desconhecido e senha errada produzem o mesmo erro", func() {
			_, unknown := e.auth.Login(e.ctx, "ninguem@example.com", "Abcde1!")
			_, wrong := e.auth.Login(e.ctx, "maria@example.com", "Errada1!")

			Expect(unknown).To(haveKind(domainerrors.KindAuthentication))
			Expect(unknown).To(haveMessage(domainerrors.ErrInvalidCredentials))
			Expect(wrong).To(haveMessage(domainerrors.ErrInvalidCredentials))
		})

		It("emite um token que autentica o usuário", func() {
			result, err := e.auth.Login(e.ctx, "  MARIA@example.com", "Abcde1!")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.User.ID).To(Equal(maria.ID))
			Expect(result.Token.Value).NotTo(BeEmpty())

			identity, err := e.auth.Authenticate(e.ctx, result.Token.Value)
			Expect(err).NotTo(HaveOccurred())
			Expect(identity.UserID).To(Equal(maria.ID))
			Expect(identity.Role).To(Equal(entities.RoleUser))
			Expect(identity.TokenID).To(Equal(result.Token.ID))
		})
	})

	Describe("Authenticate", func() {
		It("rejeita token ausente ou malformado", func() {
			_, err := e.auth.Authenticate(e.ctx, "")
			Expect(err).To(haveKind(domainerrors.KindAuthentication))

			_, err = e.auth.Authenticate(e.ctx, "nao.e.jwt")
			Expect(err).To(haveMessage(domainerrors.ErrUnauthorized))
		})

		It("rejeita o token depois do logout", func() {
			result, err := e.auth.Login(e.ctx, "maria@example.com", "Abcde1!")
			Expect(err).NotTo(HaveOccurred())

			identity, err := e.auth.Authenticate(e.ctx, result.Token.Value)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.auth.Logout(e.ctx, *identity)).To(Succeed())

			_, err = e.auth.Authenticate(e.ctx, result.Token.Value)
			Expect(err).To(haveKind(domainerrors.KindAuthentication))
		})
	})

	Describe("Me", func() {
		It("usuário comum não tem perfil profissional", func() {
			user, professional, err := e.auth.MeUser(e.ctx, identityOf(maria))
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(maria.ID))
			Expect(professional).To(BeNil())

			_, err = e.auth.MeProfessional(e.ctx, identityOf(maria))
			Expect(err).To(haveKind(domainerrors.KindNotFound))
		})

		It("profissional recebe também o perfil", func() {
			ana, err := e.professionals.Register(e.ctx, professionalInput("dra.ana", "ana@example.com", cpfAna, "(11) 98888-7777", "CRO-1"))
			Expect(err).NotTo(HaveOccurred())

			_, professional, err := e.auth.MeUser(e.ctx, identityOf(ana.User))
			Expect(err).NotTo(HaveOccurred())
			Expect(professional).NotTo(BeNil())
			Expect(professional.ID).To(Equal(ana.ID))

			mine, err := e.auth.MeProfessional(e.ctx, identityOf(ana.User))
			Expect(err).NotTo(HaveOccurred())
			Expect(mine.ProRegistration).To(Equal("CRO-1"))
		})

		It("usuário removido resulta em NotFound", func() {
			Expect(e.users.Delete(e.ctx, identityOf(maria), maria.ID)).To(Succeed())

			_, _, err := e.auth.MeUser(e.ctx, identityOf(maria))
			Expect(err).To(haveKind(domainerrors.KindNotFound))
		})
	})
})
