package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	"github.com/rafabene/sunmile-backend/internal/domain/repositories"
)

// ProfessionalRepository implementa repositories.ProfessionalRepository
type ProfessionalRepository struct {
	db *gorm.DB
}

// NewProfessionalRepository cria um novo ProfessionalRepository
func NewProfessionalRepository(db *gorm.DB) repositories.ProfessionalRepository {
	return &ProfessionalRepository{db: db}
}

func (r *ProfessionalRepository) Create(ctx context.Context, professional *entities.Professional) error {
	model := professionalToModel(professional)

	if err := conn(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return translate(err)
	}

	professional.CreatedAt = fromNano(model.CreatedAt)
	professional.UpdatedAt = fromNano(model.UpdatedAt)
	return nil
}

func (r *ProfessionalRepository) FindByID(ctx context.Context, id string) (*entities.Professional, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *ProfessionalRepository) FindByUserID(ctx context.Context, userID string) (*entities.Professional, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *ProfessionalRepository) FindByPhone(ctx context.Context, phone string) (*entities.Professional, error) {
	return r.findOne(ctx, "phone_number = ?", phone)
}

func (r *ProfessionalRepository) FindByRegistration(ctx context.Context, registration string) (*entities.Professional, error) {
	return r.findOne(ctx, "pro_registration = ?", registration)
}

// Update grava somente a linha do profissional; o usuário dono é gravado
// pelo UserRepository.
func (r *ProfessionalRepository) Update(ctx context.Context, professional *entities.Professional) error {
	model := professionalToModel(professional)

	if err := conn(ctx, r.db).Omit(clause.Associations).Save(model).Error; err != nil {
		return translate(err)
	}

	professional.UpdatedAt = fromNano(model.UpdatedAt)
	return nil
}

func (r *ProfessionalRepository) Delete(ctx context.Context, id string) error {
	return conn(ctx, r.db).Where("id = ?", id).Delete(&ProfessionalModel{}).Error
}

func (r *ProfessionalRepository) List(ctx context.Context) ([]*entities.Professional, error) {
	var models []*ProfessionalModel

	if err := conn(ctx, r.db).Preload("User").Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	professionals := make([]*entities.Professional, 0, len(models))
	for _, model := range models {
		professional, err := professionalToEntity(model)
		if err != nil {
			return nil, err
		}
		professionals = append(professionals, professional)
	}
	return professionals, nil
}

func (r *ProfessionalRepository) findOne(ctx context.Context, query string, arg any) (*entities.Professional, error) {
	var model ProfessionalModel

	if err := conn(ctx, r.db).Preload("User").Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return professionalToEntity(&model)
}

func professionalToModel(professional *entities.Professional) *ProfessionalModel {
	return &ProfessionalModel{
		ID:              professional.ID,
		UserID:          professional.UserID,
		Bio:             professional.Bio,
		PhoneNumber:     professional.PhoneNumber,
		ProRegistration: professional.ProRegistration,
		CreatedAt:       toNano(professional.CreatedAt),
		UpdatedAt:       toNano(professional.UpdatedAt),
	}
}

func professionalToEntity(model *ProfessionalModel) (*entities.Professional, error) {
	professional := &entities.Professional{
		ID:              model.ID,
		UserID:          model.UserID,
		Bio:             model.Bio,
		PhoneNumber:     model.PhoneNumber,
		ProRegistration: model.ProRegistration,
		CreatedAt:       fromNano(model.CreatedAt),
		UpdatedAt:       fromNano(model.UpdatedAt),
	}

	if model.User != nil {
		user, err := userToEntity(model.User)
		if err != nil {
			return nil, err
		}
		professional.User = user
	}

	return professional, nil
}
