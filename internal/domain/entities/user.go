package entities

import (
	"errors"
	"time"

	"github.com/rafabene/sunmile-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário do sistema
type User struct {
	ID            string
	Name          string
	Username      string
	Email         valueobjects.Email
	CPF           string // apenas dígitos
	BirthDate     time.Time
	PasswordHash  string
	Role          Role
	ProfilePicURL *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsProfessional verifica se o usuário tem perfil profissional
func (u *User) IsProfessional() bool {
	return u.Role == RoleProfessional
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// GetPermissions retorna todas as permissões do usuário
func (u *User) GetPermissions() []string {
	perms := u.Role.GetPermissions()
	result := make([]string, len(perms))
	for i, p := range perms {
		result[i] = string(p)
	}
	return result
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if u.Username == "" {
		return errors.New("username is required")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	return nil
}
