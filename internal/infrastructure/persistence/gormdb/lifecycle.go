package gormdb

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/rafabene/sunmile-backend/internal/domain/ports"
)

// Lifecycle controla a inicialização única do banco: ping e, quando
// habilitado, criação/atualização do schema.
type Lifecycle struct {
	db          *gorm.DB
	autoMigrate bool
	logger      ports.Logger

	mu    sync.Mutex
	ready bool
}

// NewLifecycle cria o controle de inicialização do banco
func NewLifecycle(db *gorm.DB, autoMigrate bool, logger ports.Logger) *Lifecycle {
	return &Lifecycle{
		db:          db,
		autoMigrate: autoMigrate,
		logger:      logger,
	}
}

// EnsureInitialized é idempotente. Chamadas concorrentes esperam a primeira
// terminar; se ela falhar, a próxima chamada tenta de novo.
func (l *Lifecycle) EnsureInitialized(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ready {
		return nil
	}

	sqlDB, err := l.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if l.autoMigrate {
		if err := l.db.WithContext(ctx).AutoMigrate(allModels()...); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
		l.logger.Info("database schema synchronized")
	}

	l.ready = true
	l.logger.Info("database initialized")
	return nil
}

// Ready indica se a inicialização já foi concluída
func (l *Lifecycle) Ready() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ready
}
