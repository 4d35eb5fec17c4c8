package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	api "github.com/collabhub/backend/api"
	"github.com/collabhub/backend/auth"
	"github.com/collabhub/backend/config"
	"github.com/collabhub/backend/database"
	"github.com/collabhub/backend/models"
	"github.com/collabhub/backend/services"
	"github.com/collabhub/backend/validation"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}
	setupLogging(cfg)

	log.Info().Msg("Initializing app...")

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	// Enable required PostgreSQL extensions
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		log.Fatal().Err(err).Msg("Error enabling uuid-ossp extension")
	}

	currentDB := database.New(db)
	defer func() {
		if err := currentDB.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database")
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DBTimeout)
	err = currentDB.Ping(pingCtx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Error testing database connection")
	}

	// If generating models, run generation and exit
	if isSet("GENERATE_MODELS") {
		log.Info().Msg("Generating models and query helpers...")
		outPath := config.GetString(config.New(), "GENERATE_MODELS_PATH", "./query")
		if err := models.GenerateModels(db, outPath, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("Error generating models")
		}
		return
	}

	// If generating column mismatch report, run report and exit
	if isSet("GENERATE_COLUMN_REPORT") {
		log.Info().Msg("Generating column mismatch report...")
		mismatches, err := models.GenerateColumnMismatchReport(db, os.Stdout)
		if err != nil {
			log.Fatal().Err(err).Msg("Error generating column report")
		}
		log.Info().Int("mismatches", mismatches).Msg("Column report complete")
		return
	}

	if isSet("SEED_REFERENCE_DATA") {
		if err := seedReferenceData(ctx, currentDB.ReferenceRepo()); err != nil {
			log.Fatal().Err(err).Msg("Error seeding reference data")
		}
		return
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, auth.WithTTL(cfg.TokenTTL))
	if !tokens.Enabled() {
		log.Warn().Msg("JWT_SECRET is not set: logins will not issue tokens and project routes will reject every request")
	}

	svc := services.New(currentDB, tokens, validation.New(), services.Config{
		Timeout:    cfg.DBTimeout,
		BcryptCost: cfg.BcryptCost,
	})

	server, err := api.NewServer(cfg, currentDB, svc)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		// Wait for SIGINT, SIGTERM or a failed listener, then drain
		<-gctx.Done()
		server.ShutdownGracefully(cfg.ShutdownTimeout)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Closing server")
	}
}

func setupLogging(cfg config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func openDatabase(cfg config.Config) (*gorm.DB, error) {
	gormLog := log.With().Str("component", "gorm").Logger()
	newLogger := logger.New(
		&gormLog,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	log.Info().Str("dsn", config.Redacted(cfg.DatabaseDSN)).Int("replicas", len(cfg.ReplicaDSNs)).Msg("Connecting to database...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
		Logger:                 newLogger,
	})
	if err != nil {
		return nil, err
	}

	if len(cfg.ReplicaDSNs) > 0 {
		replicas := make([]gorm.Dialector, 0, len(cfg.ReplicaDSNs))
		for _, dsn := range cfg.ReplicaDSNs {
			replicas = append(replicas, postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}))
		}
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func seedReferenceData(ctx context.Context, refs *database.ReferenceRepo) error {
	log.Info().Msg("Seeding expertises and tags...")
	if err := refs.Seed(ctx, models.DefaultExpertises, models.DefaultTags); err != nil {
		return err
	}

	tags, err := refs.FindAllTags(ctx)
	if err != nil {
		return err
	}
	expertises, err := refs.FindAllExpertises(ctx)
	if err != nil {
		return err
	}

	log.Info().Int("tags", len(tags)).Int("expertises", len(expertises)).Msg("Reference data ready")
	return nil
}

func isSet(key string) bool {
	return strings.EqualFold(os.Getenv(key), "true")
}
