package dto

import (
	"time"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	"github.com/rafabene/sunmile-backend/internal/services"
)

// CreateProfessionalRequest são os campos do usuário mais os do perfil
type CreateProfessionalRequest struct {
	CreateUserRequest
	PhoneNumber     string `json:"phone_number" example:"(11) 99999-9999"`
	ProRegistration string `json:"pro_registration" example:"CRO-SP 12345"`
	Bio             string `json:"bio"`
}

// ToInput converte a requisição para o input do serviço
func (r CreateProfessionalRequest) ToInput() services.RegisterProfessionalInput {
	return services.RegisterProfessionalInput{
		RegisterUserInput: r.CreateUserRequest.ToInput(),
		PhoneNumber:       r.PhoneNumber,
		ProRegistration:   r.ProRegistration,
		Bio:               r.Bio,
	}
}

// UpdateProfessionalRequest altera o perfil e os dados do usuário dono
type UpdateProfessionalRequest struct {
	UpdateUserRequest
	Bio         *string `json:"bio"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,br_phone"`
}

// ToPatch converte a requisição em patch
func (r UpdateProfessionalRequest) ToPatch() entities.ProfessionalPatch {
	return entities.ProfessionalPatch{
		User:        r.UpdateUserRequest.ToPatch(),
		Bio:         r.Bio,
		PhoneNumber: r.PhoneNumber,
	}
}

// ProfessionalResponse é o perfil profissional com o usuário dono (visão pública)
type ProfessionalResponse struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	Bio             string        `json:"bio"`
	PhoneNumber     string        `json:"phone_number"`
	ProRegistration string        `json:"pro_registration"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	User            *UserResponse `json:"user,omitempty"`
}

// ToProfessionalResponse converte a entidade, incluindo o usuário quando carregado
func ToProfessionalResponse(professional *entities.Professional) ProfessionalResponse {
	return toProfessionalResponse(professional, true)
}

// ToProfessionalResponses converte uma lista de profissionais
func ToProfessionalResponses(professionals []*entities.Professional) []ProfessionalResponse {
	responses := make([]ProfessionalResponse, len(professionals))
	for i, p := range professionals {
		responses[i] = ToProfessionalResponse(p)
	}
	return responses
}

func toProfessionalResponse(professional *entities.Professional, withUser bool) ProfessionalResponse {
	resp := ProfessionalResponse{
		ID:              professional.ID,
		UserID:          professional.UserID,
		Bio:             professional.Bio,
		PhoneNumber:     professional.PhoneNumber,
		ProRegistration: professional.ProRegistration,
		CreatedAt:       professional.CreatedAt,
		UpdatedAt:       professional.UpdatedAt,
	}
	if withUser && professional.User != nil {
		user := ToUserResponse(professional.User)
		resp.User = &user
	}
	return resp
}
