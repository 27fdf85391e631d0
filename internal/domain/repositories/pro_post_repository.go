package repositories

import (
	"context"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
)

// ProPostRepository define a persistência de posts de profissionais.
// Leituras trazem Professional e Professional.User preenchidos.
type ProPostRepository interface {
	Create(ctx context.Context, post *entities.ProPost) error
	FindByID(ctx context.Context, id string) (*entities.ProPost, error)
	Update(ctx context.Context, post *entities.ProPost) error
	Delete(ctx context.Context, id string) error
	DeleteByProfessionalID(ctx context.Context, professionalID string) error
	List(ctx context.Context) ([]*entities.ProPost, error)
}
