package services

import (
	"context"
	"strings"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
	"github.com/rafabene/sunmile-backend/internal/domain/repositories"
	"github.com/rafabene/sunmile-backend/internal/domain/valueobjects"
)

// userChecks concentra unicidade e formato dos campos de User, usados
// tanto no cadastro de usuários quanto no de profissionais.
type userChecks struct {
	users repositories.UserRepository
	rules Rules
}

// requireUserFields verifica presença dos campos obrigatórios do cadastro
func requireUserFields(in RegisterUserInput, extra map[string]string, extraOrder ...string) error {
	fields := map[string]string{
		"name":       in.Name,
		"username":   in.Username,
		"email":      in.Email,
		"cpf":        in.CPF,
		"birth_date": in.BirthDate,
		"password":   in.Password,
	}
	order := []string{"name", "username", "email", "cpf", "birth_date", "password"}
	for k, v := range extra {
		fields[k] = v
	}
	order = append(order, extraOrder...)

	if absent := missing(fields, order...); len(absent) > 0 {
		return domainerrors.Validation(domainerrors.ErrMissingFields, absent...)
	}
	return nil
}

// checkUnique falha com conflito se email, username ou cpf já existem
func (c userChecks) checkUnique(ctx context.Context, in RegisterUserInput) error {
	if err := c.checkEmail(ctx, in.Email); err != nil {
		return err
	}
	if err := c.checkUsername(ctx, in.Username); err != nil {
		return err
	}

	existing, err := c.users.FindByCPF(ctx, in.CPF)
	if err != nil {
		return domainerrors.Internal(err)
	}
	if existing != nil {
		return domainerrors.Conflict(domainerrors.ErrCPFAlreadyExists, "cpf")
	}
	return nil
}

func (c userChecks) checkEmail(ctx context.Context, email string) error {
	existing, err := c.users.FindByEmail(ctx, email)
	if err != nil {
		return domainerrors.Internal(err)
	}
	if existing != nil {
		return domainerrors.Conflict(domainerrors.ErrEmailAlreadyExists, "email")
	}
	return nil
}

func (c userChecks) checkUsername(ctx context.Context, username string) error {
	existing, err := c.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return domainerrors.Internal(err)
	}
	if existing != nil {
		return domainerrors.Conflict(domainerrors.ErrUsernameAlreadyExists, "username")
	}
	return nil
}

// checkFormat aplica as regras de formato do cadastro
func (c userChecks) checkFormat(in RegisterUserInput) error {
	if !valueobjects.IsValidEmail(in.Email) {
		return domainerrors.Validation(domainerrors.ErrInvalidEmail, "email")
	}
	if !valueobjects.IsValidCPF(in.CPF) {
		return domainerrors.Validation(domainerrors.ErrInvalidCPF, "cpf")
	}
	if !valueobjects.IsValidUsername(strings.TrimSpace(in.Username)) {
		return domainerrors.Validation(domainerrors.ErrInvalidUsername, "username")
	}
	if !c.rules.BirthDate.Valid(in.BirthDate, c.rules.now()) {
		return domainerrors.Validation(domainerrors.ErrInvalidBirthDate, "birth_date")
	}
	if !valueobjects.IsStrongPassword(in.Password) {
		return domainerrors.Validation(domainerrors.ErrWeakPassword, "password")
	}
	return nil
}

// checkPatch revalida apenas os campos que realmente mudam
// (patch já passou por Effective).
func (c userChecks) checkPatch(ctx context.Context, patch entities.UserPatch) error {
	if patch.Email != nil {
		if err := c.checkEmail(ctx, *patch.Email); err != nil {
			return err
		}
	}
	if patch.Username != nil {
		if err := c.checkUsername(ctx, *patch.Username); err != nil {
			return err
		}
	}

	if patch.Email != nil && !valueobjects.IsValidEmail(*patch.Email) {
		return domainerrors.Validation(domainerrors.ErrInvalidEmail, "email")
	}
	if patch.Username != nil && !valueobjects.IsValidUsername(*patch.Username) {
		return domainerrors.Validation(domainerrors.ErrInvalidUsername, "username")
	}
	return nil
}

// newUser monta a entidade a partir de um cadastro já validado
func newUser(in RegisterUserInput, role entities.Role, passwordHash string) (*entities.User, error) {
	email, err := valueobjects.NewEmail(in.Email)
	if err != nil {
		return nil, domainerrors.Validation(domainerrors.ErrInvalidEmail, "email")
	}
	birthDate, err := valueobjects.ParseBirthDate(in.BirthDate)
	if err != nil {
		return nil, domainerrors.Validation(domainerrors.ErrInvalidBirthDate, "birth_date")
	}

	return &entities.User{
		ID:           newID(),
		Name:         strings.TrimSpace(in.Name),
		Username:     strings.TrimSpace(in.Username),
		Email:        email,
		CPF:          valueobjects.NormalizeCPF(in.CPF),
		BirthDate:    birthDate,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}
