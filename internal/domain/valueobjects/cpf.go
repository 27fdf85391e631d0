package valueobjects

import "strings"

const cpfLength = 11

// NormalizeCPF remove a formatação (pontos, traço, espaços) e mantém apenas dígitos
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	b.Grow(cpfLength)
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF valida um CPF pelos dois dígitos verificadores (módulo 11).
// Aceita o valor com ou sem formatação (000.000.000-00).
func IsValidCPF(cpf string) bool {
	digits := NormalizeCPF(cpf)
	if len(digits) != cpfLength {
		return false
	}

	// Sequências repetidas (111.111.111-11) passam no cálculo mas são inválidas
	repeated := true
	for i := 1; i < cpfLength; i++ {
		if digits[i] != digits[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	nums := make([]int, cpfLength)
	for i := range digits {
		nums[i] = int(digits[i] - '0')
	}

	return CPFCheckDigit(nums[:9]) == nums[9] && CPFCheckDigit(nums[:10]) == nums[10]
}

// CPFCheckDigit calcula o próximo dígito verificador para a base informada
// (9 dígitos para o primeiro, 10 para o segundo).
func CPFCheckDigit(base []int) int {
	weight := len(base) + 1
	sum := 0
	for _, d := range base {
		sum += d * weight
		weight--
	}

	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
