package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"titleparser-backend/internal/llm"
	"titleparser-backend/internal/llm/openai"
	"titleparser-backend/internal/parses"
	"titleparser-backend/internal/services/health"
	"titleparser-backend/internal/shared/config"
	"titleparser-backend/internal/shared/server"
	"titleparser-backend/internal/shared/storage/db"
	"titleparser-backend/internal/shared/telemetry"
	"titleparser-backend/internal/submissions"
)

// App holds shared dependencies for the API process.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Repo          submissions.Repo
	Writer        *submissions.Writer
	LLM           llm.Client
	ParseService  *parses.Service
	HealthService *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB := buildDB(ctx, cfg)

	var repo submissions.Repo
	if sqlDB != nil {
		switch db.DialectFor(cfg.DatabaseURL) {
		case db.DialectPostgres:
			repo = &submissions.PGRepo{DB: sqlDB}
		default:
			repo = &submissions.SQLiteRepo{DB: sqlDB}
		}
	} else {
		repo = submissions.NewMemoryRepo()
	}
	writer := submissions.NewWriter(repo, cfg.AuditBuffer)

	var (
		llmClient llm.Client
		prober    health.ModelProber
	)
	if cfg.LLMEnabled {
		client, err := openai.NewClient(cfg.LLMBaseURL, openai.Options{
			Model:     cfg.LLMModel,
			Timeout:   cfg.LLMTimeout,
			MaxTokens: cfg.LLMMaxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("build llm client: %w", err)
		}
		// A single llama-server instance handles one request at a time;
		// serialize so concurrent parses queue instead of overloading it.
		llmClient = llm.Serialize(client)
		prober = client
	}

	parseSvc := parses.NewService(llmClient, writer)
	healthSvc := health.NewService(sqlDB, prober, cfg.LLMEnabled)

	app := &App{
		Config:        cfg,
		DB:            sqlDB,
		Repo:          repo,
		Writer:        writer,
		LLM:           llmClient,
		ParseService:  parseSvc,
		HealthService: healthSvc,
	}
	app.Router = server.NewRouter(cfg, server.Deps{
		Parses: parses.NewHandler(parseSvc),
		Recent: submissions.NewHandler(repo),
		Health: healthSvc,
	})
	return app, nil
}

// Close drains the audit queue and releases resources.
func (a *App) Close() {
	if a.Writer != nil {
		a.Writer.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func buildDB(ctx context.Context, cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		telemetry.Warn("DATABASE_URL empty, auditing to memory only", nil)
		return nil
	}
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		telemetry.Error("database connect failed, auditing to memory only", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err := db.Migrate(sqlDB, cfg.DatabaseURL); err != nil {
		telemetry.Error("migrations failed, auditing to memory only", map[string]any{
			"error": err.Error(),
		})
		_ = sqlDB.Close()
		return nil
	}
	return sqlDB
}
