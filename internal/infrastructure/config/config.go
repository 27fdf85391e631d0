package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env       string
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Security  SecurityConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	Signup    SignupConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	BaseURL         string // URL base da API para construir URIs RFC 7807
	Prefix          string // prefixo de todas as rotas (ex: /sunmile)
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string // para sqlite, caminho do arquivo
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int // segundos
	AutoMigrate bool
	LogLevel    string
}

type RedisConfig struct {
	URL string // vazio: revogação de tokens em memória
}

type JWTConfig struct {
	Secret       string
	Issuer       string
	AccessExpiry time.Duration
}

type SecurityConfig struct {
	BcryptCost int
}

type LoggingConfig struct {
	Level string
	JSON  bool
	File  string // vazio: apenas stdout
}

type CORSConfig struct {
	AllowedOrigin string
}

// SignupConfig contém as regras de cadastro
type SignupConfig struct {
	MinAge int
	MaxAge int
}

type RateLimitConfig struct {
	LoginPerSecond float64
	LoginBurst     int
}

// Load lê o ambiente (e um .env opcional, sem sobrescrever variáveis já definidas)
func Load() (*Config, error) {
	// .env é opcional: em produção tudo vem do ambiente
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return FromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "3000")
	v.SetDefault("API_PREFIX", "/sunmile")
	v.SetDefault("API_BASE_URL", "http://localhost:3000")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_NAME", "sunmile")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("DB_LOG_LEVEL", "warn")

	v.SetDefault("JWT_ISSUER", "sunmile")
	v.SetDefault("JWT_ACCESS_EXPIRY", "24h")
	v.SetDefault("BCRYPT_COST", 10)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_JSON", false)

	v.SetDefault("CORS_ALLOWED_ORIGIN", "https://sunmile.vercel.app")

	v.SetDefault("AGE_MIN", 18)
	v.SetDefault("AGE_MAX", 120)

	v.SetDefault("LOGIN_RATE_LIMIT", 1.0)
	v.SetDefault("LOGIN_RATE_BURST", 5)
}

// FromViper monta a configuração a partir de uma instância do viper
func FromViper(v *viper.Viper) (*Config, error) {
	env := strings.ToLower(v.GetString("ENV"))

	// Schema sincronizado automaticamente fora de produção, salvo override
	autoMigrate := env != EnvProduction
	if v.IsSet("DB_AUTO_MIGRATE") {
		autoMigrate = v.GetBool("DB_AUTO_MIGRATE")
	}

	cfg := &Config{
		Env: env,
		Server: ServerConfig{
			Port:            v.GetString("PORT"),
			Host:            v.GetString("HOST"),
			BaseURL:         strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
			Prefix:          normalizePrefix(v.GetString("API_PREFIX")),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(v.GetString("DB_DRIVER")),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USERNAME"),
			Password:    v.GetString("DB_PASSWORD"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
			AutoMigrate: autoMigrate,
			LogLevel:    v.GetString("DB_LOG_LEVEL"),
		},
		Redis: RedisConfig{
			URL: v.GetString("REDIS_URL"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			Issuer:       v.GetString("JWT_ISSUER"),
			AccessExpiry: v.GetDuration("JWT_ACCESS_EXPIRY"),
		},
		Security: SecurityConfig{
			BcryptCost: v.GetInt("BCRYPT_COST"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			JSON:  v.GetBool("LOG_JSON"),
			File:  v.GetString("LOG_FILE"),
		},
		CORS: CORSConfig{
			AllowedOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
		Signup: SignupConfig{
			MinAge: v.GetInt("AGE_MIN"),
			MaxAge: v.GetInt("AGE_MAX"),
		},
		RateLimit: RateLimitConfig{
			LoginPerSecond: v.GetFloat64("LOGIN_RATE_LIMIT"),
			LoginBurst:     v.GetInt("LOGIN_RATE_BURST"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejeita configurações que impediriam o serviço de funcionar
func (c *Config) Validate() error {
	var errs []error

	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWT.AccessExpiry <= 0 {
		errs = append(errs, errors.New("JWT_ACCESS_EXPIRY must be positive"))
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver))
	}

	if c.Signup.MinAge < 0 || c.Signup.MaxAge < c.Signup.MinAge {
		errs = append(errs, fmt.Errorf("invalid age range [%d, %d]", c.Signup.MinAge, c.Signup.MaxAge))
	}

	return errors.Join(errs...)
}

// IsProduction indica se o processo roda em produção
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// DSN retorna a connection string do driver configurado
func (d *DatabaseConfig) DSN() string {
	switch d.Driver {
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			d.User, d.Password, d.Host, d.Port, d.DBName,
		)
	case DriverSQLite:
		return d.DBName + "?_foreign_keys=on"
	default:
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
		)
	}
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || prefix == "/" {
		return ""
	}
	return "/" + strings.Trim(prefix, "/")
}
