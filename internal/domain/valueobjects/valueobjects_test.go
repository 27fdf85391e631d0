package valueobjects_test

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/sunmile-backend/internal/domain/valueobjects"
)

// buildCPF completa uma base de 9 dígitos com os dois verificadores
func buildCPF(base []int) string {
	digits := append([]int{}, base...)
	digits = append(digits, valueobjects.CPFCheckDigit(digits))
	digits = append(digits, valueobjects.CPFCheckDigit(digits))

	var b strings.Builder
	for _, d := range digits {
		b.WriteString(fmt.Sprint(d))
	}
	return b.String()
}

var _ = Describe("CPF", func() {
	It("aceita CPFs gerados com verificadores corretos", func() {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 500; i++ {
			base := make([]int, 9)
			for j := range base {
				base[j] = rng.Intn(10)
			}
			cpf := buildCPF(base)
			if strings.Count(cpf, cpf[:1]) == len(cpf) {
				continue
			}
			Expect(valueobjects.IsValidCPF(cpf)).To(BeTrue(), cpf)
		}
	})

	It("aceita CPF formatado", func() {
		Expect(valueobjects.IsValidCPF("529.982.247-25")).To(BeTrue())
		Expect(valueobjects.NormalizeCPF("529.982.247-25")).To(Equal("52998224725"))
	})

	DescribeTable("rejeita qualquer mutação de um único dígito",
		func(cpf string) {
			Expect(valueobjects.IsValidCPF(cpf)).To(BeTrue())
			for i := range cpf {
				for d := byte('0'); d <= '9'; d++ {
					if cpf[i] == d {
						continue
					}
					mutated := cpf[:i] + string(d) + cpf[i+1:]
					Expect(valueobjects.IsValidCPF(mutated)).To(BeFalse(), mutated)
				}
			}
		},
		Entry("529.982.247-25", "52998224725"),
		Entry("111.444.777-35", "11144477735"),
	)

	It("rejeita sequências repetidas", func() {
		for d := '0'; d <= '9'; d++ {
			Expect(valueobjects.IsValidCPF(strings.Repeat(string(d), 11))).To(BeFalse())
		}
	})

	DescribeTable("rejeita tamanho incorreto",
		func(cpf string) {
			Expect(valueobjects.IsValidCPF(cpf)).To(BeFalse())
		},
		Entry("vazio", ""),
		Entry("10 dígitos", "5299822472"),
		Entry("12 dígitos", "529982247250"),
		Entry("letras", "abcdefghijk"),
	)
})

var _ = Describe("Password", func() {
	DescribeTable("IsStrongPassword",
		func(password string, expected bool) {
			Expect(valueobjects.IsStrongPassword(password)).To(Equal(expected))
		},
		Entry("todas as classes", "Abcde1!", true),
		Entry("sem maiúscula, número e especial", "abcdef", false),
		Entry("sem minúscula", "ABCDE1!", false),
		Entry("curta demais", "Ab1!c", false),
		Entry("sem especial", "Abcdef1", false),
		Entry("sem número", "Abcdef!", false),
		Entry("exatamente 6", "Abcd1!", true),
	)
})

var _ = Describe("Username", func() {
	DescribeTable("IsValidUsername",
		func(username string, expected bool) {
			Expect(valueobjects.IsValidUsername(username)).To(Equal(expected))
		},
		Entry("letras, ponto, underline e número", "john.doe_1", true),
		Entry("espaço", "john doe", false),
		Entry("arroba", "john@doe", false),
		Entry("vazio", "", false),
		Entry("longo demais", strings.Repeat("a", 31), false),
	)
})

var _ = Describe("Phone", func() {
	DescribeTable("IsValidPhone",
		func(phone string, expected bool) {
			Expect(valueobjects.IsValidPhone(phone)).To(Equal(expected))
		},
		Entry("formato padrão", "(11) 99999-9999", true),
		Entry("sem espaço", "(21)98888-7777", true),
		Entry("fixo", "(11) 3333-4444", false),
		Entry("sem DDD", "99999-9999", false),
		Entry("somente dígitos", "11999999999", false),
	)
})

var _ = Describe("Email", func() {
	DescribeTable("IsValidEmail",
		func(email string, expected bool) {
			Expect(valueobjects.IsValidEmail(email)).To(Equal(expected))
		},
		Entry("simples", "john@example.com", true),
		Entry("maiúsculas são normalizadas", "John.Doe@Example.COM", true),
		Entry("sem arroba", "john.example.com", false),
		Entry("sem domínio", "john@", false),
		Entry("sem tld", "john@example", false),
	)

	It("normaliza o value object", func() {
		email, err := valueobjects.NewEmail("  John@Example.com ")
		Expect(err).NotTo(HaveOccurred())
		Expect(email.String()).To(Equal("john@example.com"))
	})
})

var _ = Describe("BirthDatePolicy", func() {
	now := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)
	policy := valueobjects.BirthDatePolicy{MinAge: 18, MaxAge: 120}

	DescribeTable("Valid",
		func(value string, expected bool) {
			Expect(policy.Valid(value, now)).To(Equal(expected))
		},
		Entry("adulto", "1990-05-20", true),
		Entry("completa 18 hoje", "2008-03-10", true),
		Entry("completa 18 amanhã", "2008-03-11", false),
		Entry("no futuro", "2030-01-01", false),
		Entry("data inexistente", "2001-02-30", false),
		Entry("formato errado", "20/05/1990", false),
		Entry("acima da idade máxima", "1900-01-01", false),
	)

	It("calcula a idade considerando mês e dia", func() {
		birth := time.Date(2000, time.December, 31, 0, 0, 0, 0, time.UTC)
		Expect(valueobjects.AgeAt(birth, now)).To(Equal(25))
	})
})
