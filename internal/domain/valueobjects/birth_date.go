package valueobjects

import (
	"errors"
	"strings"
	"time"
)

// BirthDateLayout é o formato aceito para datas de nascimento (input type=date)
const BirthDateLayout = "2006-01-02"

const (
	DefaultMinAge = 18
	DefaultMaxAge = 120
)

var ErrInvalidBirthDate = errors.New("invalid birth date")

// BirthDatePolicy define a faixa de idade permitida no cadastro
type BirthDatePolicy struct {
	MinAge int
	MaxAge int
}

// DefaultBirthDatePolicy retorna a política padrão (18 a 120 anos)
func DefaultBirthDatePolicy() BirthDatePolicy {
	return BirthDatePolicy{MinAge: DefaultMinAge, MaxAge: DefaultMaxAge}
}

// ParseBirthDate converte YYYY-MM-DD em data (UTC, meia-noite)
func ParseBirthDate(value string) (time.Time, error) {
	t, err := time.Parse(BirthDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidBirthDate
	}
	return t, nil
}

// Valid verifica se a data é válida, não está no futuro e se a idade
// resultante está dentro da faixa permitida.
func (p BirthDatePolicy) Valid(value string, now time.Time) bool {
	birth, err := ParseBirthDate(value)
	if err != nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if birth.After(today) {
		return false
	}

	age := AgeAt(birth, today)
	return age >= p.MinAge && age <= p.MaxAge
}

// AgeAt calcula a idade completa (em anos) na data informada
func AgeAt(birth, at time.Time) int {
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	return age
}
