package repositories

import (
	"context"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Buscas sem resultado devolvem (nil, nil).
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindByCPF(ctx context.Context, cpf string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.User, error)
}
