package dto

import (
	"time"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	"github.com/rafabene/sunmile-backend/internal/domain/valueobjects"
	"github.com/rafabene/sunmile-backend/internal/services"
)

// CreateUserRequest representa a requisição para cadastrar um usuário.
// Presença e formato são verificados pelo serviço, na ordem do cadastro.
type CreateUserRequest struct {
	Name      string `json:"name" example:"Maria Silva"`
	Username  string `json:"username" example:"maria.silva"`
	Email     string `json:"email" example:"maria@example.com"`
	CPF       string `json:"cpf" example:"529.982.247-25"`
	BirthDate string `json:"birth_date" example:"1990-05-20"`
	Password  string `json:"password" example:"Abcde1!"`
}

// ToInput converte a requisição para o input do serviço
func (r CreateUserRequest) ToInput() services.RegisterUserInput {
	return services.RegisterUserInput{
		Name:      r.Name,
		Username:  r.Username,
		Email:     r.Email,
		CPF:       r.CPF,
		BirthDate: r.BirthDate,
		Password:  r.Password,
	}
}

// UpdateUserRequest representa a requisição para atualizar um usuário.
// Campos ausentes ou vazios não mudam.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username" binding:"omitempty,username"`
	Email    *string `json:"email" binding:"omitempty,email_addr"`
}

// ToPatch converte a requisição em patch
func (r UpdateUserRequest) ToPatch() entities.UserPatch {
	return entities.UserPatch{
		Name:     r.Name,
		Username: r.Username,
		Email:    r.Email,
	}
}

// ChangePasswordRequest usa camelCase por compatibilidade com o frontend
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateAvatarRequest recebe a URL devolvida pelo serviço de imagens
type UpdateAvatarRequest struct {
	ProfilePicURL string `json:"profile_pic_url"`
}

// UserResponse é a visão pública de um usuário (sem cpf e data de nascimento)
type UserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	ProfilePicURL *string   `json:"profile_pic_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProfileResponse é a visão completa, devolvida ao próprio usuário (ou admin)
type ProfileResponse struct {
	UserResponse
	CPF          string                `json:"cpf"`
	BirthDate    string                `json:"birth_date"`
	Professional *ProfessionalResponse `json:"professional,omitempty"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Username:      user.Username,
		Email:         user.Email.String(),
		Role:          string(user.Role),
		ProfilePicURL: user.ProfilePicURL,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// ToProfileResponse inclui os dados pessoais e, para profissionais, o perfil
func ToProfileResponse(user *entities.User, professional *entities.Professional) ProfileResponse {
	resp := ProfileResponse{
		UserResponse: ToUserResponse(user),
		CPF:          user.CPF,
		BirthDate:    user.BirthDate.Format(valueobjects.BirthDateLayout),
	}
	if professional != nil {
		p := toProfessionalResponse(professional, false)
		resp.Professional = &p
	}
	return resp
}
