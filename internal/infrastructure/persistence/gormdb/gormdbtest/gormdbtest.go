// Package gormdbtest abre bancos sqlite temporários, já migrados, para testes.
package gormdbtest

import (
	"context"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/rafabene/sunmile-backend/internal/infrastructure/config"
	"github.com/rafabene/sunmile-backend/internal/infrastructure/logging"
	"github.com/rafabene/sunmile-backend/internal/infrastructure/persistence/gormdb"
)

// TB é o subconjunto de testing.TB (e de GinkgoT) usado aqui
type TB interface {
	Helper()
	TempDir() string
	Cleanup(func())
	Fatalf(format string, args ...any)
}

// Config devolve a configuração de um sqlite em diretório temporário
func Config(t TB) *config.DatabaseConfig {
	t.Helper()
	return &config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		DBName:   filepath.Join(t.TempDir(), "sunmile.db"),
		LogLevel: "silent",
	}
}

// NewDB abre e migra um banco sqlite novo, fechado ao fim do teste
func NewDB(t TB) *gorm.DB {
	t.Helper()

	logger := logging.NewNop()
	db, err := gormdb.Open(Config(t), logger)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = gormdb.Close(db) })

	if err := gormdb.NewLifecycle(db, true, logger).EnsureInitialized(context.Background()); err != nil {
		t.Fatalf("failed to initialize sqlite: %v", err)
	}
	return db
}
