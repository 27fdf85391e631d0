package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
	"github.com/rafabene/sunmile-backend/internal/services"
)

func ptr(s string) *string { return &s }

var _ = Describe("UserService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	Describe("Register", func() {
		It("cadastra com senha em hash, cpf normalizado e role user", func() {
			in := userInput("maria.silva", "Maria@Example.com", "529.982.247-25")

			user, err := e.users.Register(e.ctx, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeEmpty())
			Expect(user.Role).To(Equal(entities.RoleUser))
			Expect(user.CPF).To(Equal(cpfMaria))
			Expect(user.Email.String()).To(Equal("maria@example.com"))
			Expect(user.PasswordHash).NotTo(Equal(in.Password))
			Expect(e.hasher.Compare(user.PasswordHash, in.Password)).To(BeTrue())
		})

		It("rejeita email repetido com conflito, independente dos demais campos", func() {
			_, err := e.users.Register(e.ctx, userInput("maria", "maria@example.com", cpfMaria))
			Expect(err).NotTo(HaveOccurred())

			second := userInput("outra.pessoa", "MARIA@example.com", cpfJoao)
			second.Name = "Outra Pessoa"
			second.BirthDate = "1985-01-01"

			_, err = e.users.Register(e.ctx, second)
			Expect(err).To(haveKind(domainerrors.KindConflict))
			Expect(err).To(haveMessage(domainerrors.ErrEmailAlreadyExists))
		})

		It("unicidade vem antes do formato", func() {
			_, err := e.users.Register(e.ctx, userInput("maria", "maria@example.com", cpfMaria))
			Expect(err).NotTo(HaveOccurred())

			dup := userInput("joao", "maria@example.com", "123")
			dup.Password = "fraca"

			_, err = e.users.Register(e.ctx, dup)
			Expect(err).To(haveKind(domainerrors.KindConflict))
		})

		DescribeTable("conflitos de username e cpf",
			func(in services.RegisterUserInput, id error) {
				_, err := e.users.Register(e.ctx, userInput("maria", "maria@example.com", cpfMaria))
				Expect(err).NotTo(HaveOccurred())

				_, err = e.users.Register(e.ctx, in)
				Expect(err).To(haveKind(domainerrors.KindConflict))
				Expect(err).To(haveMessage(id))
			},
			Entry("username", userInput("maria", "joao@example.com", cpfJoao), domainerrors.ErrUsernameAlreadyExists),
			Entry("cpf formatado", userInput("joao", "joao@example.com", "529.982.247-25"), domainerrors.ErrCPFAlreadyExists),
		)

		It("lista os campos ausentes", func() {
			in := userInput("", "maria@example.com", cpfMaria)
			in.Password = ""

			_, err := e.users.Register(e.ctx, in)
			Expect(err).To(haveKind(domainerrors.KindValidation))
			Expect(err).To(haveMessage(domainerrors.ErrMissingFields))

			de, _ := domainerrors.As(err)
			Expect(de.Fields).To(Equal([]string{"username", "password"}))
		})

		DescribeTable("formato inválido resulta em erro de validação",
			func(mutate func(*services.RegisterUserInput), id error) {
				in := userInput("maria", "maria@example.com", cpfMaria)
				mutate(&in)

				_, err := e.users.Register(e.ctx, in)
				Expect(err).To(haveKind(domainerrors.KindValidation))
				Expect(err).To(haveMessage(id))

				all, listErr := e.users.List(e.ctx)
				Expect(listErr).NotTo(HaveOccurred())
				Expect(all).To(BeEmpty())
			},
			Entry("email", func(in *services.RegisterUserInput) { in.Email = "maria@" }, domainerrors.ErrInvalidEmail),
			Entry("cpf", func(in *services.RegisterUserInput) { in.CPF = "52998224724" }, domainerrors.ErrInvalidCPF),
			Entry("cpf repetido", func(in *services.RegisterUserInput) { in.CPF = "11111111111" }, domainerrors.ErrInvalidCPF),
			Entry("username com espaço", func(in *services.RegisterUserInput) { in.Username = "maria silva" }, domainerrors.ErrInvalidUsername),
			Entry("menor de idade", func(in *services.RegisterUserInput) { in.BirthDate = "2010-01-01" }, domainerrors.ErrInvalidBirthDate),
			Entry("data futura", func(in *services.RegisterUserInput) { in.BirthDate = "2030-01-01" }, domainerrors.ErrInvalidBirthDate),
			Entry("data inexistente", func(in *services.RegisterUserInput) { in.BirthDate = "1990-02-30" }, domainerrors.ErrInvalidBirthDate),
			Entry("senha fraca", func(in *services.RegisterUserInput) { in.Password = "abcdef" }, domainerrors.ErrWeakPassword),
		)
	})

	Describe("Get e List", func() {
		It("retorna NotFound para id inexistente", func() {
			_, err := e.users.Get(e.ctx, "nao-existe")
			Expect(err).To(haveKind(domainerrors.KindNotFound))
		})

		It("lista na ordem de cadastro", func() {
			first, _ := e.users.Register(e.ctx, userInput("maria", "maria@example.com", cpfMaria))
			second, _ := e.users.Register(e.ctx, userInput("joao", "joao@example.com", cpfJoao))

			all, err := e.users.List(e.ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
			Expect(all[0].ID).To(Equal(first.ID))
			Expect(all[1].ID).To(Equal(second.ID))
		})
	})

	Describe("Update", func() {
		var maria, joao *entities.User

		BeforeEach(func() {
			var err error
			maria, err = e.users.Register(e.ctx, userInput("maria", "maria@example.com", cpfMaria))
			Expect(err).NotTo(HaveOccurred())
			joao, err = e.users.Register(e.ctx, userInput("joao", "joao@example.com", cpfJoao))
			Expect(err).NotTo(HaveOccurred())
		})

		It("o dono altera apenas os campos informados", func() {
			updated, err := e.users.Update(e.ctx, identityOf(maria), maria.ID, entities.UserPatch{Name: ptr("Maria Souza")})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Maria Souza"))
			Expect(updated.Username).To(Equal("maria"))

			stored, _ := e.users.Get(e.ctx, maria.ID)
			Expect(stored.Name).To(Equal("Maria Souza"))
		})

		It("outro usuário recebe Forbidden", func() {
			_, err := e.users.Update(e.ctx, identityOf(joao), maria.ID, entities.UserPatch{Name: ptr("Invasor")})
			Expect(err).To(haveKind(domainerrors.KindAuthorization))
		})

		It("admin pode alterar qualquer usuário", func() {
			admin := e.makeAdmin(joao)
			updated, err := e.users.Update(e.ctx, admin, maria.ID, entities.UserPatch{Username: ptr("maria.adm")})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Username).To(Equal("maria.adm"))
		})

		It("não reverifica campos que não mudaram", func() {
			_, err := e.users.Update(e.ctx, identityOf(maria), maria.ID, entities.UserPatch{
				Username: ptr("maria"),
				Email:    ptr("MARIA@example.com"),
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("username já usado por outro resulta em conflito", func() {
			_, err := e.users.Update(e.ctx, identityOf(maria), maria.ID, entities.UserPatch{Username: ptr("joao")})
			Expect(err).To(haveKind(domainerrors.KindConflict))
		})

		It("email inválido resulta em erro de validação", func() {
			_, err := e.users.Update(e.ctx, identityOf(maria), maria.ID, entities.UserPatch{Email: ptr("invalido")})
			Expect(err).To(haveKind(domainerrors.KindValidation))
			Expect(err).To(haveMessage(domainerrors.ErrInvalidEmail))
		})

		It("usuário inexistente resulta em NotFound antes da autorização", func() {
			_, err := e.users.Update(e.ctx, identityOf(maria), "nao-existe", entities.UserPatch{Name: ptr("x")})
			Expect(err).To(haveKind(domainerrors.KindNotFound))
		})
	})

	Describe("Delete", func() {
		It("remove em cascata perfil profissional e posts e revoga o token do próprio usuário", func() {
			pro, err := e.professionals.Register(e.ctx, professionalInput("dra.ana", "ana@example.com", cpfAna, "(11) 98888-7777", "CRO-1"))
			Expect(err).NotTo(HaveOccurred())
			actor := identityOf(pro.User)

			_, err = e.posts.Create(e.ctx, actor, services.CreateProPostInput{Title: "t", Content: "c"})
			Expect(err).NotTo(HaveOccurred())

			Expect(e.users.Delete(e.ctx, actor, pro.UserID)).To(Succeed())

			_, err = e.professionals.Get(e.ctx, pro.ID)
			Expect(err).To(haveKind(domainerrors.KindNotFound))
			posts, _ := e.posts.List(e.ctx)
			Expect(posts).To(BeEmpty())

			revoked, err := e.revoked.IsRevoked(e.ctx, actor.TokenID)
			Expect(err).NotTo(HaveOccurred())
			Expect(revoked).To(BeTrue())
		})

		It("outro usuário recebe Forbidden", func() {
			maria, _ := e.users.Register(e.ctx, userInput("maria", "maria@example.com", cpfMaria))
			joao, _ := e.users.Register(e.ctx, userInput("joao", "joao@example.com", cpfJoao))

			err := e.users.Delete(e.ctx, identityOf(joao), maria.ID)
			Expect(err).To(haveKind(domainerrors.KindAuthorization))

			_, err = e.users.Get(e.ctx, maria.ID)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("ChangePassword", func() {
		var maria *entities.User

		BeforeEach(func() {
			maria, _ = e.users.Register(e.ctx, userInput("maria", "maria@example.com", cpfMaria))
		})

		It("exige as duas senhas", func() {
			err := e.users.ChangePassword(e.ctx, identityOf(maria), "", "Nova1!x")
			Expect(err).To(haveMessage(domainerrors.ErrMissingPasswords))
		})

		It("senha atual incorreta resulta em 401", func() {
			err := e.users.ChangePassword(e.ctx, identityOf(maria), "Errada1!", "Nova1!x")
			Expect(err).To(haveKind(domainerrors.KindAuthentication))
			Expect(err).To(haveMessage(domainerrors.ErrWrongPassword))
		})

		It("nova senha precisa ser forte", func() {
			err := e.users.ChangePassword(e.ctx, identityOf(maria), "Abcde1!", "fraca")
			Expect(err).To(haveKind(domainerrors.KindValidation))
			Expect(err).To(haveMessage(domainerrors.ErrWeakPassword))
		})

		It("troca a senha usada no login", func() {
			Expect(e.users.ChangePassword(e.ctx, identityOf(maria), "Abcde1!", "Nova1!x")).To(Succeed())

			_, err := e.auth.Login(e.ctx, "maria@example.com", "Abcde1!")
			Expect(err).To(haveKind(domainerrors.KindAuthentication))

			_, err = e.auth.Login(e.ctx, "maria@example.com", "Nova1!x")
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("UpdateAvatar", func() {
		It("exige a URL e grava como texto opaco", func() {
			maria, _ := e.users.Register(e.ctx, userInput("maria", "maria@example.com", cpfMaria))

			_, err := e.users.UpdateAvatar(e.ctx, identityOf(maria), "  ")
			Expect(err).To(haveMessage(domainerrors.ErrMissingProfilePic))

			updated, err := e.users.UpdateAvatar(e.ctx, identityOf(maria), "https://i.ibb.co/abc/foto.png")
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.ProfilePicURL).To(HaveValue(Equal("https://i.ibb.co/abc/foto.png")))
		})
	})
})
