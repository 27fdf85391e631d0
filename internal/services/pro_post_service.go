package services

import (
	"context"
	"strings"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
	"github.com/rafabene/sunmile-backend/internal/domain/ports"
)

// ProPostService contém a lógica de negócio dos posts de profissionais
type ProPostService struct {
	repos  Repositories
	logger ports.Logger
}

// NewProPostService cria um novo ProPostService
func NewProPostService(repos Repositories, logger ports.Logger) *ProPostService {
	return &ProPostService{repos: repos, logger: logger}
}

// CreateProPostInput são os dados de um novo post
type CreateProPostInput struct {
	Title     string
	Content   string
	ImageURLs []string
}

// Create publica um post em nome do profissional do chamador
func (s *ProPostService) Create(ctx context.Context, actor entities.Identity, in CreateProPostInput) (*entities.ProPost, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, domainerrors.Validation(domainerrors.ErrMissingPostFields, "title", "content")
	}

	professional, err := s.repos.Professionals.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if professional == nil {
		return nil, domainerrors.Forbidden(domainerrors.ErrProfessionalOnly)
	}

	imageURLs := append([]string{}, in.ImageURLs...)
	post := &entities.ProPost{
		ID:             newID(),
		ProfessionalID: professional.ID,
		Title:          title,
		Content:        content,
		ImageURLs:      imageURLs,
	}

	if err := s.repos.Posts.Create(ctx, post); err != nil {
		return nil, persistenceError(err)
	}
	post.Professional = professional

	s.logger.Info("post created", "post_id", post.ID, "professional_id", professional.ID)
	return post, nil
}

// Get busca um post por ID, com profissional e usuário
func (s *ProPostService) Get(ctx context.Context, id string) (*entities.ProPost, error) {
	post, err := s.repos.Posts.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if post == nil {
		return nil, domainerrors.NotFound(domainerrors.ErrPostNotFound)
	}
	return post, nil
}

// List lista todos os posts
func (s *ProPostService) List(ctx context.Context) ([]*entities.ProPost, error) {
	posts, err := s.repos.Posts.List(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return posts, nil
}

// Update altera o post. Apenas o profissional dono ou um admin.
func (s *ProPostService) Update(ctx context.Context, actor entities.Identity, id string, patch entities.ProPostPatch) (*entities.ProPost, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, current.OwnerID()); err != nil {
		return nil, err
	}

	next := patch.Apply(*current)
	if next.Title == "" || next.Content == "" {
		return nil, domainerrors.Validation(domainerrors.ErrMissingPostFields, "title", "content")
	}

	if err := s.repos.Posts.Update(ctx, &next); err != nil {
		return nil, persistenceError(err)
	}

	s.logger.Info("post updated", "post_id", next.ID, "actor_id", actor.UserID)
	return &next, nil
}

// Delete remove o post. Apenas o profissional dono ou um admin.
func (s *ProPostService) Delete(ctx context.Context, actor entities.Identity, id string) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(actor, post.OwnerID()); err != nil {
		return err
	}

	if err := s.repos.Posts.Delete(ctx, post.ID); err != nil {
		return persistenceError(err)
	}

	s.logger.Info("post deleted", "post_id", post.ID, "actor_id", actor.UserID)
	return nil
}
