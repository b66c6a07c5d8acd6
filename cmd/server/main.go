package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"careline-chatbot/internal/backend"
	"careline-chatbot/internal/config"
	"careline-chatbot/internal/core"
	"careline-chatbot/internal/db"
	"careline-chatbot/internal/dialogue"
	httpserver "careline-chatbot/internal/http"
	"careline-chatbot/internal/llm"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	logger := newLogger(cfg)
	defer logger.Sync()

	ctx := context.Background()

	client := backend.NewClient(cfg.BackendBaseURL,
		backend.WithHTTPClient(&http.Client{Timeout: cfg.BackendTimeout}),
		backend.WithLogger(logger),
	)
	machine := dialogue.NewMachine(client, nil, logger)
	engine := buildEngine(ctx, cfg, logger)

	opts := []core.Option{core.WithLogger(logger)}
	if cfg.DatabaseURL != "" {
		dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("failed to open database", zap.Error(err))
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := dbConn.PingContext(pingCtx); err != nil {
			logger.Fatal("failed to ping database", zap.Error(err))
		}
		if err := db.Migrate(ctx, dbConn); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		opts = append(opts, core.WithTranscripts(db.NewRepository(dbConn)))
		logger.Info("transcript log enabled")
	}

	orc := core.NewOrchestrator(machine, engine, cfg.PatientID, opts...)
	srv := httpserver.NewServer(orc, logger)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, srv.Routes()); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// buildEngine assembles the fallback conversation engine from whichever
// providers are configured: Gemini primary, OpenAI secondary, or a static
// responder when neither credential is present.
func buildEngine(ctx context.Context, cfg *config.Config, logger *zap.Logger) llm.Engine {
	var engines []llm.Engine
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiEngine(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("gemini engine unavailable", zap.Error(err))
		} else {
			engines = append(engines, gemini)
		}
	}
	if cfg.OpenAIAPIKey != "" {
		oa, err := llm.NewOpenAIEngine(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			logger.Warn("openai engine unavailable", zap.Error(err))
		} else {
			engines = append(engines, oa)
		}
	}
	switch len(engines) {
	case 0:
		logger.Warn("no conversation engine configured, fallback turns get a static reply")
		return llm.Static{Reply: dialogue.ReplyUnavailable}
	case 1:
		return engines[0]
	default:
		return llm.NewFailoverEngine(engines[0], engines[1], logger)
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	var zcfg zap.Config
	if cfg.IsDevelopment() {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	return logger
}
