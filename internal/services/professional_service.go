package services

import (
	"context"
	"strings"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
	"github.com/rafabene/sunmile-backend/internal/domain/ports"
	"github.com/rafabene/sunmile-backend/internal/domain/valueobjects"
)

// ProfessionalService contém a lógica de negócio de profissionais
type ProfessionalService struct {
	repos   Repositories
	checks  userChecks
	uow     ports.UnitOfWork
	hasher  ports.PasswordHasher
	revoked ports.TokenRevocationStore
	logger  ports.Logger
}

// NewProfessionalService cria um novo ProfessionalService
func NewProfessionalService(
	repos Repositories,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	revoked ports.TokenRevocationStore,
	rules Rules,
	logger ports.Logger,
) *ProfessionalService {
	return &ProfessionalService{
		repos:   repos,
		checks:  userChecks{users: repos.Users, rules: rules},
		uow:     uow,
		hasher:  hasher,
		revoked: revoked,
		logger:  logger,
	}
}

// RegisterProfessionalInput são os dados do usuário mais o perfil profissional
type RegisterProfessionalInput struct {
	RegisterUserInput
	PhoneNumber     string
	ProRegistration string
	Bio             string
}

// Register cria o usuário (role pro) e o profissional na mesma transação.
// Nenhuma linha é gravada se qualquer verificação falhar.
func (s *ProfessionalService) Register(ctx context.Context, in RegisterProfessionalInput) (*entities.Professional, error) {
	extra := map[string]string{
		"phone_number":     in.PhoneNumber,
		"pro_registration": in.ProRegistration,
	}
	if err := requireUserFields(in.RegisterUserInput, extra, "phone_number", "pro_registration"); err != nil {
		return nil, err
	}

	phone := strings.TrimSpace(in.PhoneNumber)
	registration := strings.TrimSpace(in.ProRegistration)

	if err := s.checks.checkUnique(ctx, in.RegisterUserInput); err != nil {
		return nil, err
	}
	if err := s.checkPhone(ctx, phone); err != nil {
		return nil, err
	}
	if err := s.checkRegistration(ctx, registration); err != nil {
		return nil, err
	}

	if err := s.checks.checkFormat(in.RegisterUserInput); err != nil {
		return nil, err
	}
	if !valueobjects.IsValidPhone(phone) {
		return nil, domainerrors.Validation(domainerrors.ErrInvalidPhone, "phone_number")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}

	user, err := newUser(in.RegisterUserInput, entities.RoleProfessional, hash)
	if err != nil {
		return nil, err
	}

	professional := &entities.Professional{
		ID:              newID(),
		UserID:          user.ID,
		Bio:             strings.TrimSpace(in.Bio),
		PhoneNumber:     phone,
		ProRegistration: registration,
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repos.Users.Create(txCtx, user); err != nil {
			return err
		}
		return s.repos.Professionals.Create(txCtx, professional)
	})
	if err != nil {
		return nil, persistenceError(err)
	}

	professional.User = user
	s.logger.Info("professional registered", "professional_id", professional.ID, "user_id", user.ID)
	return professional, nil
}

// Get busca um profissional (com usuário) por ID
func (s *ProfessionalService) Get(ctx context.Context, id string) (*entities.Professional, error) {
	professional, err := s.repos.Professionals.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if professional == nil {
		return nil, domainerrors.NotFound(domainerrors.ErrProfessionalNotFound)
	}
	return professional, nil
}

// List lista todos os profissionais com seus usuários
func (s *ProfessionalService) List(ctx context.Context) ([]*entities.Professional, error) {
	professionals, err := s.repos.Professionals.List(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return professionals, nil
}

// Update altera perfil e dados do usuário dono. Apenas o dono ou um admin.
func (s *ProfessionalService) Update(ctx context.Context, actor entities.Identity, id string, patch entities.ProfessionalPatch) (*entities.Professional, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, current.OwnerID()); err != nil {
		return nil, err
	}
	if current.User == nil {
		return nil, domainerrors.Internal(domainerrors.ErrUserNotFound)
	}

	effective := patch.Effective(current)
	if effective.IsEmpty() {
		return current, nil
	}

	if err := s.checks.checkPatch(ctx, effective.User); err != nil {
		return nil, err
	}
	if effective.PhoneNumber != nil {
		if err := s.checkPhone(ctx, *effective.PhoneNumber); err != nil {
			return nil, err
		}
		if !valueobjects.IsValidPhone(*effective.PhoneNumber) {
			return nil, domainerrors.Validation(domainerrors.ErrInvalidPhone, "phone_number")
		}
	}

	next, err := effective.Apply(*current)
	if err != nil {
		return nil, domainerrors.Validation(domainerrors.ErrInvalidEmail, "email")
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if !effective.User.IsEmpty() {
			if err := s.repos.Users.Update(txCtx, next.User); err != nil {
				return err
			}
		}
		return s.repos.Professionals.Update(txCtx, &next)
	})
	if err != nil {
		return nil, persistenceError(err)
	}

	s.logger.Info("professional updated", "professional_id", next.ID, "actor_id", actor.UserID)
	return &next, nil
}

// Delete remove posts, perfil profissional e o usuário dono
func (s *ProfessionalService) Delete(ctx context.Context, actor entities.Identity, id string) error {
	professional, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(actor, professional.OwnerID()); err != nil {
		return err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return deleteUserCascade(txCtx, s.repos, professional.UserID)
	})
	if err != nil {
		return persistenceError(err)
	}

	revokeSelf(ctx, s.revoked, actor, professional.UserID, s.logger)
	s.logger.Info("professional deleted", "professional_id", professional.ID, "actor_id", actor.UserID)
	return nil
}

func (s *ProfessionalService) checkPhone(ctx context.Context, phone string) error {
	existing, err := s.repos.Professionals.FindByPhone(ctx, phone)
	if err != nil {
		return domainerrors.Internal(err)
	}
	if existing != nil {
		return domainerrors.Conflict(domainerrors.ErrPhoneAlreadyExists, "phone_number")
	}
	return nil
}

func (s *ProfessionalService) checkRegistration(ctx context.Context, registration string) error {
	existing, err := s.repos.Professionals.FindByRegistration(ctx, registration)
	if err != nil {
		return domainerrors.Internal(err)
	}
	if existing != nil {
		return domainerrors.Conflict(domainerrors.ErrRegistrationAlreadyExists, "pro_registration")
	}
	return nil
}
