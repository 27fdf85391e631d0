package services

import (
	"context"
	"strings"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
	"github.com/rafabene/sunmile-backend/internal/domain/ports"
	"github.com/rafabene/sunmile-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	repos   Repositories
	checks  userChecks
	uow     ports.UnitOfWork
	hasher  ports.PasswordHasher
	revoked ports.TokenRevocationStore
	logger  ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	repos Repositories,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	revoked ports.TokenRevocationStore,
	rules Rules,
	logger ports.Logger,
) *UserService {
	return &UserService{
		repos:   repos,
		checks:  userChecks{users: repos.Users, rules: rules},
		uow:     uow,
		hasher:  hasher,
		revoked: revoked,
		logger:  logger,
	}
}

// RegisterUserInput representa os dados de cadastro de um usuário
type RegisterUserInput struct {
	Name      string
	Username  string
	Email     string
	CPF       string
	BirthDate string // YYYY-MM-DD
	Password  string
}

// Register cadastra um usuário comum.
// Ordem: presença (400) -> unicidade (409) -> formato (400) -> gravação.
func (s *UserService) Register(ctx context.Context, in RegisterUserInput) (*entities.User, error) {
	if err := requireUserFields(in, nil); err != nil {
		return nil, err
	}
	if err := s.checks.checkUnique(ctx, in); err != nil {
		return nil, err
	}
	if err := s.checks.checkFormat(in); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}

	user, err := newUser(in, entities.RoleUser, hash)
	if err != nil {
		return nil, err
	}

	if err := s.repos.Users.Create(ctx, user); err != nil {
		return nil, persistenceError(err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Get busca um usuário por ID
func (s *UserService) Get(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.repos.Users.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if user == nil {
		return nil, domainerrors.NotFound(domainerrors.ErrUserNotFound)
	}
	return user, nil
}

// List lista todos os usuários
func (s *UserService) List(ctx context.Context) ([]*entities.User, error) {
	users, err := s.repos.Users.List(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return users, nil
}

// Update altera os campos informados. Apenas o dono ou um admin.
func (s *UserService) Update(ctx context.Context, actor entities.Identity, id string, patch entities.UserPatch) (*entities.User, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, current.ID); err != nil {
		return nil, err
	}

	effective := patch.Effective(current)
	if effective.IsEmpty() {
		return current, nil
	}
	if err := s.checks.checkPatch(ctx, effective); err != nil {
		return nil, err
	}

	next, err := effective.Apply(*current)
	if err != nil {
		return nil, domainerrors.Validation(domainerrors.ErrInvalidEmail, "email")
	}

	if err := s.repos.Users.Update(ctx, &next); err != nil {
		return nil, persistenceError(err)
	}

	s.logger.Info("user updated", "user_id", next.ID, "actor_id", actor.UserID)
	return &next, nil
}

// Delete remove o usuário e, em cascata, o perfil profissional e os posts
func (s *UserService) Delete(ctx context.Context, actor entities.Identity, id string) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(actor, user.ID); err != nil {
		return err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return deleteUserCascade(txCtx, s.repos, user.ID)
	})
	if err != nil {
		return persistenceError(err)
	}

	revokeSelf(ctx, s.revoked, actor, user.ID, s.logger)
	s.logger.Info("user deleted", "user_id", user.ID, "actor_id", actor.UserID)
	return nil
}

// ChangePassword troca a senha do próprio chamador
func (s *UserService) ChangePassword(ctx context.Context, actor entities.Identity, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return domainerrors.Validation(domainerrors.ErrMissingPasswords, "currentPassword", "newPassword")
	}

	user, err := s.Get(ctx, actor.UserID)
	if err != nil {
		return err
	}

	if !s.hasher.Compare(user.PasswordHash, currentPassword) {
		return domainerrors.Unauthenticated(domainerrors.ErrWrongPassword)
	}
	if !valueobjects.IsStrongPassword(newPassword) {
		return domainerrors.Validation(domainerrors.ErrWeakPassword, "new_password")
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return domainerrors.Internal(err)
	}

	next := *user
	next.PasswordHash = hash
	if err := s.repos.Users.Update(ctx, &next); err != nil {
		return persistenceError(err)
	}

	s.logger.Info("password changed", "user_id", user.ID)
	return nil
}

// UpdateAvatar define a foto de perfil do chamador. A URL vem do serviço
// de hospedagem de imagens e é tratada como texto opaco.
func (s *UserService) UpdateAvatar(ctx context.Context, actor entities.Identity, url string) (*entities.User, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, domainerrors.Validation(domainerrors.ErrMissingProfilePic, "profile_pic_url")
	}

	user, err := s.Get(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	next, err := entities.UserPatch{ProfilePicURL: &url}.Apply(*user)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if err := s.repos.Users.Update(ctx, &next); err != nil {
		return nil, persistenceError(err)
	}

	return &next, nil
}

// deleteUserCascade remove posts, perfil profissional e o usuário.
// Deve rodar dentro de uma transação.
func deleteUserCascade(ctx context.Context, repos Repositories, userID string) error {
	professional, err := repos.Professionals.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if professional != nil {
		if err := repos.Posts.DeleteByProfessionalID(ctx, professional.ID); err != nil {
			return err
		}
		if err := repos.Professionals.Delete(ctx, professional.ID); err != nil {
			return err
		}
	}
	return repos.Users.Delete(ctx, userID)
}
