package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"os"
	"strconv"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	passwordvalidator "github.com/wagslane/go-password-validator"
	"golang.org/x/crypto/bcrypt"

	"github.com/talx-hub/likeboard/internal/model"
	"github.com/talx-hub/likeboard/internal/service/hasher"
)

const minSecretEntropyBits = 48

type Config struct {
	Host        string `env:"HOST"         envDefault:""`
	Port        string `env:"PORT"         envDefault:"5000"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:""`
	JWTSecret   string `env:"JWT_SECRET"   envDefault:""`
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`
	AppEnv      string `env:"APP_ENV"      envDefault:"dev"`
	BcryptCost  int    `env:"BCRYPT_COST"  envDefault:"10"`
	HashWorkers int    `env:"HASH_WORKERS" envDefault:"0"`
}

func (c *Config) RunAddr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Validate checks everything the server needs to start.
func (c *Config) Validate() error {
	var errs []error
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be in [1, 65535], got %q", c.Port))
	}
	if err := c.ValidateDatabase(); err != nil {
		errs = append(errs, err)
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	} else if err := passwordvalidator.Validate(c.JWTSecret, minSecretEntropyBits); err != nil {
		errs = append(errs, fmt.Errorf("JWT_SECRET is too weak: %w", err))
	}
	if c.BcryptCost < hasher.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be in [%d, %d], got %d",
			hasher.MinCost, bcrypt.MaxCost, c.BcryptCost))
	}
	if c.HashWorkers < 0 {
		errs = append(errs, fmt.Errorf("HASH_WORKERS must not be negative, got %d", c.HashWorkers))
	}
	return errors.Join(errs...)
}

// ValidateDatabase is the subset of Validate the migrate command needs.
func (c *Config) ValidateDatabase() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	return nil
}

type Builder struct {
	cfg *Config
	log *slog.Logger
	err error
}

func NewBuilder(log *slog.Logger) *Builder {
	return &Builder{
		cfg: &Config{},
		log: log,
	}
}

// FromDotEnv loads the env file of the current APP_ENV into the process
// environment. Variables that are already set are left untouched and a
// missing file is not an error.
func (b *Builder) FromDotEnv() *Builder {
	path := dotEnvFile(os.Getenv("APP_ENV"))
	err := godotenv.Load(path)
	switch {
	case err == nil:
		b.log.LogAttrs(context.Background(),
			slog.LevelDebug, "loaded env file", slog.String("path", path))
	case errors.Is(err, fs.ErrNotExist):
	default:
		b.fail(fmt.Errorf("failed to load %s: %w", path, err))
	}
	return b
}

func (b *Builder) FromEnv() *Builder {
	if err := env.Parse(b.cfg); err != nil {
		b.fail(fmt.Errorf("failed to parse env: %w", err))
	}
	return b
}

// FromFlags overrides the config with every flag explicitly set on the command line.
func (b *Builder) FromFlags(flags *pflag.FlagSet) *Builder {
	if flags == nil {
		return b
	}

	var err error
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case flagHost:
			b.cfg.Host = f.Value.String()
		case flagPort:
			b.cfg.Port = f.Value.String()
		case flagDatabaseURL:
			b.cfg.DatabaseURL = f.Value.String()
		case flagJWTSecret:
			b.cfg.JWTSecret = f.Value.String()
		case flagLogLevel:
			b.cfg.LogLevel = f.Value.String()
		case flagBcryptCost:
			b.cfg.BcryptCost, err = flags.GetInt(flagBcryptCost)
		case flagHashWorkers:
			b.cfg.HashWorkers, err = flags.GetInt(flagHashWorkers)
		}
		if err != nil {
			b.fail(fmt.Errorf("failed to read flag %s: %w", f.Name, err))
			err = nil
		}
	})
	return b
}

func (b *Builder) GetConfig() (*Config, error) {
	return b.cfg, b.err
}

func (b *Builder) fail(err error) {
	b.log.LogAttrs(context.Background(),
		slog.LevelError, "failed to build config", slog.Any(model.KeyLoggerError, err))
	b.err = errors.Join(b.err, err)
}

func dotEnvFile(appEnv string) string {
	switch appEnv {
	case "test":
		return "test.env"
	case "production", "prod":
		return "prod.env"
	default:
		return "dev.env"
	}
}

const (
	flagHost        = "host"
	flagPort        = "port"
	flagDatabaseURL = "database-url"
	flagJWTSecret   = "jwt-secret"
	flagLogLevel    = "log-level"
	flagBcryptCost  = "bcrypt-cost"
	flagHashWorkers = "hash-workers"
)

// RegisterServerFlags declares the flags FromFlags understands.
func RegisterServerFlags(flags *pflag.FlagSet) {
	RegisterDatabaseFlags(flags)
	flags.String(flagHost, "", "Host to listen on (HOST)")
	flags.StringP(flagPort, "p", "", "Port to listen on (PORT)")
	flags.StringP(flagJWTSecret, "k", "", "Secret used to sign tokens (JWT_SECRET)")
	flags.Int(flagBcryptCost, 0, "bcrypt cost factor (BCRYPT_COST)")
	flags.Int(flagHashWorkers, 0, "Concurrent password hash operations, 0 for CPU count (HASH_WORKERS)")
}

func RegisterDatabaseFlags(flags *pflag.FlagSet) {
	flags.StringP(flagDatabaseURL, "d", "", "PostgreSQL connection string (DATABASE_URL)")
	flags.StringP(flagLogLevel, "l", "", "Log level: debug, info, warn, error (LOG_LEVEL)")
}
