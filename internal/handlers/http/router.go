package http

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rafabene/sunmile-backend/docs"
	"github.com/rafabene/sunmile-backend/internal/domain/ports"
	"github.com/rafabene/sunmile-backend/internal/handlers/dto"
	"github.com/rafabene/sunmile-backend/internal/handlers/middleware"
	"github.com/rafabene/sunmile-backend/internal/infrastructure/config"
	"github.com/rafabene/sunmile-backend/internal/infrastructure/i18n"
	"github.com/rafabene/sunmile-backend/internal/infrastructure/metrics"
	"github.com/rafabene/sunmile-backend/internal/services"
)

// Datastore é o ciclo de vida do banco visto pela camada HTTP
type Datastore interface {
	middleware.Initializer
	Readiness
}

// RouterDeps reúne o que o roteador precisa
type RouterDeps struct {
	Config        *config.Config
	Logger        ports.Logger
	ZapLogger     *zap.Logger
	I18n          *i18n.Service
	Metrics       *metrics.Metrics
	Datastore     Datastore
	Auth          *services.AuthService
	Users         *services.UserService
	Professionals *services.ProfessionalService
	Posts         *services.ProPostService
}

// NewRouter monta o gin.Engine com middlewares globais e a tabela de rotas
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	dto.RegisterValidators()

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(ginzap.GinzapWithConfig(deps.ZapLogger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/health", "/metrics"},
		Context: func(c *gin.Context) []zapcore.Field {
			return []zapcore.Field{zap.String("request_id", c.GetString(middleware.RequestIDContextKey))}
		},
	}))
	r.Use(ginzap.CustomRecoveryWithZap(deps.ZapLogger, true, recoverPanic(deps.Logger)))
	r.Use(renderErrors(deps.Logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigin))
	r.Use(middleware.BaseURL(cfg.Server.BaseURL))
	r.Use(middleware.NewI18nMiddleware(deps.I18n).DetectLanguage())
	r.NoRoute(notFound)

	health := NewHealthHandler(deps.Datastore, cfg.Env)
	r.GET("/health", health.Health)
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	if !cfg.IsProduction() {
		docs.SwaggerInfo.BasePath = cfg.Server.Prefix
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.Server.Prefix)
	api.Use(middleware.RequireDatastore(deps.Datastore, deps.Logger))
	registerRoutes(api, deps)

	return r
}

func registerRoutes(api *gin.RouterGroup, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.Auth, deps.Metrics)
	userHandler := NewUserHandler(deps.Users)
	professionalHandler := NewProfessionalHandler(deps.Professionals)
	postHandler := NewProPostHandler(deps.Posts)

	requireAuth := middleware.RequireAuth(deps.Auth)
	loginLimiter := middleware.NewIPRateLimiter(deps.Config.RateLimit.LoginPerSecond, deps.Config.RateLimit.LoginBurst)

	// Auth
	api.POST("/login", loginLimiter.Middleware(), authHandler.Login)
	api.GET("/me/user", requireAuth, authHandler.MeUser)
	api.GET("/me/pro", requireAuth, authHandler.MeProfessional)
	api.POST("/logout", requireAuth, authHandler.Logout)

	// Users
	users := api.Group("/users")
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", requireAuth, userHandler.UpdateUser)
		users.DELETE("/:id", requireAuth, userHandler.DeleteUser)
		users.PATCH("/change-password", requireAuth, userHandler.ChangePassword)
		users.PATCH("/me/avatar", requireAuth, userHandler.UpdateAvatar)
	}

	// Professionals (/pro/:id é o caminho usado pelo frontend)
	professionals := api.Group("/professionals")
	{
		professionals.GET("", professionalHandler.ListProfessionals)
		professionals.POST("", professionalHandler.CreateProfessional)
		professionals.GET("/:id", professionalHandler.GetProfessional)
		professionals.PUT("/:id", requireAuth, professionalHandler.UpdateProfessional)
		professionals.DELETE("/:id", requireAuth, professionalHandler.DeleteProfessional)
	}
	api.PUT("/pro/:id", requireAuth, professionalHandler.UpdateProfessional)
	api.DELETE("/pro/:id", requireAuth, professionalHandler.DeleteProfessional)

	// ProPosts
	posts := api.Group("/pro-posts")
	{
		posts.GET("", postHandler.ListProPosts)
		posts.GET("/:id", postHandler.GetProPost)
		posts.POST("", requireAuth, postHandler.CreateProPost)
		posts.PUT("/:id", requireAuth, postHandler.UpdateProPost)
		posts.DELETE("/:id", requireAuth, postHandler.DeleteProPost)
	}
}
