package gormdb

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	"github.com/rafabene/sunmile-backend/internal/domain/repositories"
	"github.com/rafabene/sunmile-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := userToModel(user)

	if err := conn(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return translate(err)
	}

	user.CreatedAt = fromNano(model.CreatedAt)
	user.UpdatedAt = fromNano(model.UpdatedAt)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", valueobjects.NormalizeEmail(email))
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepository) FindByCPF(ctx context.Context, cpf string) (*entities.User, error) {
	return r.findOne(ctx, "cpf = ?", valueobjects.NormalizeCPF(cpf))
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := userToModel(user)

	if err := conn(ctx, r.db).Omit(clause.Associations).Save(model).Error; err != nil {
		return translate(err)
	}

	user.UpdatedAt = fromNano(model.UpdatedAt)
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return conn(ctx, r.db).Where("id = ?", id).Delete(&UserModel{}).Error
}

// List devolve todos os usuários na ordem de cadastro
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var models []*UserModel

	if err := conn(ctx, r.db).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(models))
	for _, model := range models {
		user, err := userToEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*entities.User, error) {
	var model UserModel

	if err := conn(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model)
}

// Conversores
func userToModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:            user.ID,
		Name:          user.Name,
		Username:      user.Username,
		Email:         user.Email.String(),
		CPF:           user.CPF,
		BirthDate:     user.BirthDate.Format(valueobjects.BirthDateLayout),
		PasswordHash:  user.PasswordHash,
		Role:          string(user.Role),
		ProfilePicURL: user.ProfilePicURL,
		CreatedAt:     toNano(user.CreatedAt),
		UpdatedAt:     toNano(user.UpdatedAt),
	}
}

func userToEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	birthDate, err := valueobjects.ParseBirthDate(model.BirthDate)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:            model.ID,
		Name:          model.Name,
		Username:      model.Username,
		Email:         email,
		CPF:           model.CPF,
		BirthDate:     birthDate,
		PasswordHash:  model.PasswordHash,
		Role:          entities.Role(model.Role),
		ProfilePicURL: model.ProfilePicURL,
		CreatedAt:     fromNano(model.CreatedAt),
		UpdatedAt:     fromNano(model.UpdatedAt),
	}, nil
}

// Timestamps são gravados em nanossegundos (ordem de inserção estável)
func toNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromNano(ns int64) time.Time {
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns).UTC()
}
