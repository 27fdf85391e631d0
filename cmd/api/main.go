// Sunmile API
//
//	@title						Sunmile API
//	@version					1.0
//	@description				Rede social de profissionais: usuários, profissionais e posts.
//	@BasePath					/sunmile
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer <token>
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rafabene/sunmile-backend/internal/domain/ports"
	"github.com/rafabene/sunmile-backend/internal/domain/valueobjects"
	httphandlers "github.com/rafabene/sunmile-backend/internal/handlers/http"
	"github.com/rafabene/sunmile-backend/internal/infrastructure/config"
	"github.com/rafabene/sunmile-backend/internal/infrastructure/i18n"
	"github.com/rafabene/sunmile-backend/internal/infrastructure/logging"
	"github.com/rafabene/sunmile-backend/internal/infrastructure/metrics"
	"github.com/rafabene/sunmile-backend/internal/infrastructure/persistence/gormdb"
	"github.com/rafabene/sunmile-backend/internal/infrastructure/security"
	"github.com/rafabene/sunmile-backend/internal/infrastructure/tokenstore"
	"github.com/rafabene/sunmile-backend/internal/services"
)

const defaultLanguage = "pt-BR"

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// Inicializar logger
	logger, zapLogger, flush := logging.New(cfg.Logging)
	defer flush()

	if err := run(cfg, logger, zapLogger); err != nil {
		logger.Error("server exited with error", "error", err)
		flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger ports.Logger, zapLogger *zap.Logger) error {
	logger.Info("starting sunmile backend",
		"env", cfg.Env,
		"prefix", cfg.Server.Prefix,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Banco: o pool é criado agora, a inicialização (ping + schema) é sob demanda
	db, err := gormdb.Open(&cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := gormdb.Close(db); err != nil {
			logger.Warn("failed to close database", "error", err)
		}
	}()

	lifecycle := gormdb.NewLifecycle(db, cfg.Database.AutoMigrate, logger)
	bootCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	if err := lifecycle.EnsureInitialized(bootCtx); err != nil {
		logger.Warn("database not ready at boot, will retry on first request", "error", err)
	}
	cancel()

	// Revogação de tokens: Redis quando configurado, memória caso contrário
	revoked := tokenstore.NewMemoryStore()
	if cfg.Redis.URL != "" {
		store, client, err := tokenstore.NewRedisStore(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		revoked = store
		logger.Info("token revocation backed by redis")
	} else {
		logger.Warn("REDIS_URL not set, token revocation kept in memory")
	}

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService(defaultLanguage)
	if err != nil {
		return err
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	repos := services.Repositories{
		Users:         gormdb.NewUserRepository(db),
		Professionals: gormdb.NewProfessionalRepository(db),
		Posts:         gormdb.NewProPostRepository(db),
	}
	uow := gormdb.NewUnitOfWork(db)

	// Inicializar services
	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)
	tokens := security.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessExpiry)
	rules := services.Rules{
		BirthDate: valueobjects.BirthDatePolicy{MinAge: cfg.Signup.MinAge, MaxAge: cfg.Signup.MaxAge},
		Now:       time.Now,
	}

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterDeps{
		Config:        cfg,
		Logger:        logger,
		ZapLogger:     zapLogger,
		I18n:          i18nService,
		Metrics:       metrics.New(),
		Datastore:     lifecycle,
		Auth:          services.NewAuthService(repos, hasher, tokens, revoked, logger),
		Users:         services.NewUserService(repos, uow, hasher, revoked, rules, logger),
		Professionals: services.NewProfessionalService(repos, uow, hasher, revoked, rules, logger),
		Posts:         services.NewProPostService(repos, logger),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server exited")
	return nil
}
