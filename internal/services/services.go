package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
	"github.com/rafabene/sunmile-backend/internal/domain/ports"
	"github.com/rafabene/sunmile-backend/internal/domain/repositories"
	"github.com/rafabene/sunmile-backend/internal/domain/valueobjects"
)

// Repositories agrupa os repositórios usados pelos serviços
type Repositories struct {
	Users         repositories.UserRepository
	Professionals repositories.ProfessionalRepository
	Posts         repositories.ProPostRepository
}

// Rules são as regras de cadastro configuráveis
type Rules struct {
	BirthDate valueobjects.BirthDatePolicy
	Now       func() time.Time
}

// DefaultRules usa a faixa de idade padrão e o relógio do sistema
func DefaultRules() Rules {
	return Rules{BirthDate: valueobjects.DefaultBirthDatePolicy(), Now: time.Now}
}

func (r Rules) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// newID gera os identificadores das entidades
var newID = uuid.NewString

// authorize aplica a regra dono-ou-admin
func authorize(actor entities.Identity, ownerUserID string) error {
	if !actor.CanModify(ownerUserID) {
		return domainerrors.Forbidden(domainerrors.ErrForbidden)
	}
	return nil
}

// persistenceError converte falhas de escrita: unicidade violada no banco
// vira conflito, o resto é erro interno.
func persistenceError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := domainerrors.As(err); ok {
		return err
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		return domainerrors.Conflict(domainerrors.ErrDuplicateRecord)
	}
	return domainerrors.Internal(err)
}

// missing devolve os nomes dos campos vazios (após trim)
func missing(fields map[string]string, order ...string) []string {
	var out []string
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			out = append(out, name)
		}
	}
	return out
}

// revokeSelf invalida o token do chamador quando ele remove a própria conta
func revokeSelf(ctx context.Context, store ports.TokenRevocationStore, actor entities.Identity, removedUserID string, logger ports.Logger) {
	if store == nil || actor.UserID != removedUserID || actor.TokenID == "" {
		return
	}
	if err := store.Revoke(ctx, actor.TokenID, actor.ExpiresAt); err != nil {
		logger.Warn("failed to revoke token of removed account", "user_id", removedUserID, "error", err)
	}
}
