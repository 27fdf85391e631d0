package repositories

import (
	"context"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
)

// ProfessionalRepository define a persistência de profissionais.
// Leituras trazem o usuário dono preenchido em Professional.User.
type ProfessionalRepository interface {
	Create(ctx context.Context, professional *entities.Professional) error
	FindByID(ctx context.Context, id string) (*entities.Professional, error)
	FindByUserID(ctx context.Context, userID string) (*entities.Professional, error)
	FindByPhone(ctx context.Context, phone string) (*entities.Professional, error)
	FindByRegistration(ctx context.Context, registration string) (*entities.Professional, error)
	Update(ctx context.Context, professional *entities.Professional) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.Professional, error)
}
