package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/aihelper/screening-backend/internal/api"
	screeningapi "github.com/aihelper/screening-backend/internal/api/screening"
	"github.com/aihelper/screening-backend/internal/config"
	"github.com/aihelper/screening-backend/internal/intent"
	"github.com/aihelper/screening-backend/internal/integration/oracle"
	"github.com/aihelper/screening-backend/internal/pkg/validator"
	"github.com/aihelper/screening-backend/internal/plan"
	"github.com/aihelper/screening-backend/internal/repository"
	"github.com/aihelper/screening-backend/internal/rubric"
	"github.com/aihelper/screening-backend/internal/scoring"
	"github.com/aihelper/screening-backend/internal/telegram"
	"github.com/aihelper/screening-backend/internal/usecase/screening"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	db, screeningUC, err := buildCore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	keywordRepo := repository.NewKeywordPostgres(db)

	// Setup API handler
	screeningHandler := screeningapi.NewHandler(screeningUC, keywordRepo, validator.NewValidator())
	logger.Info("API handler initialized")

	// Setup router
	router := api.SetupRouter(screeningHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}

// BuildTelegramBot creates and initializes the Telegram bot
func BuildTelegramBot() (telegram.Bot, *zap.Logger, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building Telegram bot",
		zap.String("environment", cfg.Environment),
	)

	db, screeningUC, err := buildCore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	bot, err := telegram.NewBot(&cfg.TelegramCfg, screeningUC, logger)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	logger.Info("Telegram bot built successfully",
		zap.String("environment", cfg.Environment),
	)

	return bot, logger, nil
}

// buildCore wires the screening use case shared by the HTTP server and
// the Telegram bot: database, repositories, oracle connectors, rubrics,
// and the question plan.
func buildCore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pgxpool.Pool, *screening.ScreeningUsecase, error) {
	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	sessionRepo := repository.NewSessionPostgres(db)
	responseRepo := repository.NewResponsePostgres(db)
	keywordRepo := repository.NewKeywordPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize oracle connector (with mock support)
	var intentOracle intent.Oracle
	var scoreOracle scoring.Oracle

	if cfg.EnableMocks {
		logger.Info("Using mock connector for the oracle service")
		mock := oracle.NewMockConnector(logger)
		intentOracle, scoreOracle = mock, mock
	} else {
		logger.Info("Using real connector for the oracle service")
		connector := oracle.NewConnector(cfg.OracleConnectorCfg, logger)
		intentOracle, scoreOracle = connector, connector
	}

	// Load scoring rubrics
	rubrics := rubric.Default()
	if cfg.RubricFile != "" {
		rubrics, err = rubric.Load(cfg.RubricFile)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("load rubric file: %w", err)
		}
	}
	logger.Info("Scoring rubrics loaded", zap.Int("rubric_count", rubrics.Len()))

	// Load question plan
	questionPlan, err := plan.Select(cfg.QuestionPlan)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("load question plan: %w", err)
	}
	logger.Info("Question plan loaded",
		zap.String("plan", questionPlan.Name()),
		zap.Int("total_questions", questionPlan.TotalQuestions()),
	)

	// Initialize use case
	screeningUC := screening.NewUsecase(
		questionPlan,
		intent.NewClassifier(intentOracle),
		scoring.NewScorer(rubrics, scoreOracle),
		sessionRepo,
		responseRepo,
		keywordRepo,
		cfg.SessionTTL,
		logger,
	)
	logger.Info("Use case initialized")

	return db, screeningUC, nil
}
