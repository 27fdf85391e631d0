package services

import (
	"context"
	"strings"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
	"github.com/rafabene/sunmile-backend/internal/domain/ports"
)

// AuthService cuida de login, verificação de tokens e logout
type AuthService struct {
	repos   Repositories
	hasher  ports.PasswordHasher
	tokens  ports.TokenManager
	revoked ports.TokenRevocationStore
	logger  ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	repos Repositories,
	hasher ports.PasswordHasher,
	tokens ports.TokenManager,
	revoked ports.TokenRevocationStore,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		repos:   repos,
		hasher:  hasher,
		tokens:  tokens,
		revoked: revoked,
		logger:  logger,
	}
}

// LoginResult é o token emitido e o usuário autenticado
type LoginResult struct {
	Token ports.IssuedToken
	User  *entities.User
}

// Login troca email e senha por um token. Email desconhecido e senha errada
// produzem o mesmo erro, para não revelar qual dos dois falhou.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, domainerrors.Validation(domainerrors.ErrMissingCredentials, "email", "password")
	}

	user, err := s.repos.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if user == nil || !s.hasher.Compare(user.PasswordHash, password) {
		return nil, domainerrors.Unauthenticated(domainerrors.ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &LoginResult{Token: token, User: user}, nil
}

// Authenticate valida o bearer token e devolve a identidade do chamador
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entities.Identity, error) {
	if token == "" {
		return nil, domainerrors.Unauthenticated(domainerrors.ErrUnauthorized)
	}

	identity, err := s.tokens.Parse(token)
	if err != nil {
		return nil, domainerrors.Unauthenticated(domainerrors.ErrUnauthorized)
	}

	if identity.TokenID != "" {
		revoked, err := s.revoked.IsRevoked(ctx, identity.TokenID)
		if err != nil {
			return nil, domainerrors.Internal(err)
		}
		if revoked {
			return nil, domainerrors.Unauthenticated(domainerrors.ErrUnauthorized)
		}
	}

	return identity, nil
}

// Logout revoga o token atual até sua expiração
func (s *AuthService) Logout(ctx context.Context, identity entities.Identity) error {
	if identity.TokenID == "" {
		return nil
	}
	if err := s.revoked.Revoke(ctx, identity.TokenID, identity.ExpiresAt); err != nil {
		return domainerrors.Internal(err)
	}
	s.logger.Info("user logged out", "user_id", identity.UserID)
	return nil
}

// MeUser devolve o usuário do token; para profissionais, também o perfil
func (s *AuthService) MeUser(ctx context.Context, identity entities.Identity) (*entities.User, *entities.Professional, error) {
	user, err := s.repos.Users.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, nil, domainerrors.Internal(err)
	}
	if user == nil {
		return nil, nil, domainerrors.NotFound(domainerrors.ErrUserNotFound)
	}

	if !user.IsProfessional() {
		return user, nil, nil
	}

	professional, err := s.repos.Professionals.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, nil, domainerrors.Internal(err)
	}
	return user, professional, nil
}

// MeProfessional devolve o perfil profissional do chamador
func (s *AuthService) MeProfessional(ctx context.Context, identity entities.Identity) (*entities.Professional, error) {
	professional, err := s.repos.Professionals.FindByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if professional == nil {
		return nil, domainerrors.NotFound(domainerrors.ErrProfessionalNotFound)
	}
	return professional, nil
}
