package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	"github.com/rafabene/sunmile-backend/internal/domain/repositories"
)

// ProPostRepository implementa repositories.ProPostRepository
type ProPostRepository struct {
	db *gorm.DB
}

// NewProPostRepository cria um novo ProPostRepository
func NewProPostRepository(db *gorm.DB) repositories.ProPostRepository {
	return &ProPostRepository{db: db}
}

func (r *ProPostRepository) Create(ctx context.Context, post *entities.ProPost) error {
	model := proPostToModel(post)

	if err := conn(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return translate(err)
	}

	post.CreatedAt = fromNano(model.CreatedAt)
	post.UpdatedAt = fromNano(model.UpdatedAt)
	return nil
}

func (r *ProPostRepository) FindByID(ctx context.Context, id string) (*entities.ProPost, error) {
	var model ProPostModel

	err := conn(ctx, r.db).
		Preload("Professional.User").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return proPostToEntity(&model)
}

func (r *ProPostRepository) Update(ctx context.Context, post *entities.ProPost) error {
	model := proPostToModel(post)

	if err := conn(ctx, r.db).Omit(clause.Associations).Save(model).Error; err != nil {
		return translate(err)
	}

	post.UpdatedAt = fromNano(model.UpdatedAt)
	return nil
}

func (r *ProPostRepository) Delete(ctx context.Context, id string) error {
	return conn(ctx, r.db).Where("id = ?", id).Delete(&ProPostModel{}).Error
}

func (r *ProPostRepository) DeleteByProfessionalID(ctx context.Context, professionalID string) error {
	return conn(ctx, r.db).Where("professional_id = ?", professionalID).Delete(&ProPostModel{}).Error
}

func (r *ProPostRepository) List(ctx context.Context) ([]*entities.ProPost, error) {
	var models []*ProPostModel

	err := conn(ctx, r.db).
		Preload("Professional.User").
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entities.ProPost, 0, len(models))
	for _, model := range models {
		post, err := proPostToEntity(model)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func proPostToModel(post *entities.ProPost) *ProPostModel {
	imageURLs := post.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	return &ProPostModel{
		ID:             post.ID,
		ProfessionalID: post.ProfessionalID,
		Title:          post.Title,
		Content:        post.Content,
		ImageURLs:      imageURLs,
		CreatedAt:      toNano(post.CreatedAt),
		UpdatedAt:      toNano(post.UpdatedAt),
	}
}

func proPostToEntity(model *ProPostModel) (*entities.ProPost, error) {
	imageURLs := model.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	post := &entities.ProPost{
		ID:             model.ID,
		ProfessionalID: model.ProfessionalID,
		Title:          model.Title,
		Content:        model.Content,
		ImageURLs:      imageURLs,
		CreatedAt:      fromNano(model.CreatedAt),
		UpdatedAt:      fromNano(model.UpdatedAt),
	}

	if model.Professional != nil {
		professional, err := professionalToEntity(model.Professional)
		if err != nil {
			return nil, err
		}
		post.Professional = professional
	}

	return post, nil
}
