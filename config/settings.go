package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"
)

var ErrMissingDatabase = errors.New("no database configured: set DATABASE_URL or DB_HOST")

// Config is the typed view of the environment used by main.
type Config struct {
	Port string

	DatabaseDSN string
	ReplicaDSNs []string
	DBTimeout   time.Duration

	JWTSecret      string
	JWTSecretParam string
	TokenTTL       time.Duration
	BcryptCost     int

	AcceptedOrigins []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	LogLevel  string
	LogPretty bool

	AWSRegion string
}

// FromEnv builds a Config from an environment map as returned by New.
func FromEnv(env map[string]string) (Config, error) {
	dsn, err := databaseDSN(env)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:            GetString(env, "PORT", "8080"),
		DatabaseDSN:     dsn,
		ReplicaDSNs:     GetList(env, "DB_REPLICA_URLS"),
		DBTimeout:       GetDuration(env, "DB_TIMEOUT_SECONDS", time.Second, 5*time.Second),
		JWTSecret:       GetString(env, "JWT_SECRET", ""),
		JWTSecretParam:  GetString(env, "JWT_SECRET_SSM_PARAM", ""),
		TokenTTL:        GetDuration(env, "TOKEN_TTL_HOURS", time.Hour, 24*time.Hour),
		BcryptCost:      GetInt(env, "BCRYPT_COST", 10),
		AcceptedOrigins: GetList(env, "ACCEPTED_ORIGINS"),
		ReadTimeout:     GetDuration(env, "READ_TIMEOUT_SECONDS", time.Second, 180*time.Second),
		WriteTimeout:    GetDuration(env, "WRITE_TIMEOUT_SECONDS", time.Second, 180*time.Second),
		IdleTimeout:     GetDuration(env, "IDLE_TIMEOUT_SECONDS", time.Second, 180*time.Second),
		ShutdownTimeout: GetDuration(env, "SHUTDOWN_TIMEOUT_SECONDS", time.Second, 30*time.Second),
		LogLevel:        GetString(env, "LOG_LEVEL", "info"),
		LogPretty:       GetBool(env, "LOG_PRETTY", false),
		AWSRegion:       GetString(env, "AWS_REGION", ""),
	}, nil
}

// Load reads the environment and resolves JWT_SECRET_SSM_PARAM when JWT_SECRET is empty.
func Load(ctx context.Context) (Config, error) {
	cfg, err := FromEnv(New())
	if err != nil {
		return Config{}, err
	}

	if cfg.JWTSecret != "" || cfg.JWTSecretParam == "" {
		return cfg, nil
	}

	client, err := newParameterClient(ctx, cfg.AWSRegion)
	if err != nil {
		return Config{}, err
	}

	secret, err := ResolveParameter(ctx, client, cfg.JWTSecretParam)
	if err != nil {
		return Config{}, err
	}
	cfg.JWTSecret = secret

	return cfg, nil
}

func databaseDSN(env map[string]string) (string, error) {
	if dsn := GetString(env, "DATABASE_URL", ""); dsn != "" {
		return dsn, nil
	}

	host := GetString(env, "DB_HOST", "")
	if host == "" {
		return "", ErrMissingDatabase
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host,
		GetString(env, "DB_USER", "postgres"),
		GetString(env, "DB_PASSWORD", ""),
		GetString(env, "DB_NAME", "postgres"),
		GetString(env, "DB_PORT", "5432"),
		GetString(env, "DB_SSLMODE", "disable"),
	), nil
}

// Redacted returns dsn with any URL password masked, for logging.
func Redacted(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return "[key/value dsn]"
	}
	return u.Redacted()
}
