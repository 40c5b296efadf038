package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/alou/yoga-journal/pkg/audit"
	"github.com/alou/yoga-journal/pkg/config"
	"github.com/alou/yoga-journal/pkg/database"
	"github.com/alou/yoga-journal/pkg/handlers"
	"github.com/alou/yoga-journal/pkg/llm"
	"github.com/alou/yoga-journal/pkg/middleware"
	"github.com/alou/yoga-journal/pkg/refcache"
	"github.com/alou/yoga-journal/pkg/repositories"
	"github.com/alou/yoga-journal/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

const migrationsPath = "migrations"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("database", cfg.Database.Database),
		zap.String("db_host", cfg.Database.Host),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.String("ai_model", cfg.AI.Model))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// A missing database degrades the server instead of killing it: the
	// status endpoint reports disconnected and the API answers 503 until
	// the operator runs the provisioner.
	db := connect(ctx, cfg, logger)
	if db != nil {
		defer db.Close()
	}

	mux := http.NewServeMux()

	statusHandler := handlers.NewStatusHandler(cfg, func() bool { return db != nil }, logger.Named("status"))
	statusHandler.RegisterRoutes(mux)

	brandingHandler := handlers.NewBrandingHandler(cfg.AssetsDir, logger.Named("branding"))
	brandingHandler.RegisterRoutes(mux)

	if db != nil {
		registerAPI(mux, cfg, db, logger)
	} else {
		mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
			if err := handlers.ErrorResponse(w, http.StatusServiceUnavailable, "not_connected",
				"journal database is not reachable; run yoga-setup and check PG* settings"); err != nil {
				logger.Error("Failed to write error response", zap.Error(err))
			}
		})
	}

	// Serve static UI files
	fs := http.FileServer(http.Dir(cfg.AssetsDir))
	mux.Handle("/", fs)

	handler := middleware.RequestLogger(logger.Named("http"))(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting yoga-journal",
		zap.String("addr", addr),
		zap.String("version", cfg.Version),
		zap.Bool("connected", db != nil))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// connect opens the pool and applies pending migrations. Any failure is
// logged and the server continues disconnected.
func connect(ctx context.Context, cfg *config.Config, logger *zap.Logger) *database.DB {
	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Warn("Database unreachable, starting disconnected", zap.Error(err))
		return nil
	}

	migrationDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		logger.Warn("Could not open migration connection, starting disconnected", zap.Error(err))
		db.Close()
		return nil
	}
	defer func() { _ = migrationDB.Close() }()

	if err := database.RunMigrations(migrationDB, migrationsPath, logger.Named("migrations")); err != nil {
		logger.Warn("Migrations failed, starting disconnected", zap.Error(err))
		db.Close()
		return nil
	}

	return db
}

func registerAPI(mux *http.ServeMux, cfg *config.Config, db *database.DB, logger *zap.Logger) {
	referenceRepo := repositories.NewReferenceRepository(db)
	classRepo := repositories.NewClassRepository(db)
	statsRepo := repositories.NewStatsRepository(db)
	suggestionRepo := repositories.NewSuggestionRepository(db)

	refCache := refcache.New(referenceRepo, refcache.DefaultTTL)

	journalService := services.NewJournalService(classRepo, refCache, logger.Named("journal"))
	dashboardService := services.NewDashboardService(statsRepo, logger.Named("dashboard"))
	securityLog := audit.NewSecurityLogger(logger.Named("audit"))
	historyService := services.NewHistoryService(classRepo, securityLog, logger.Named("history"))

	completionClient, err := llm.NewCompletionClient(cfg.AI.Provider, &llm.Config{
		Endpoint: cfg.AI.BaseURL,
		Model:    cfg.AI.Model,
		APIKey:   cfg.AI.APIKey,
	}, logger.Named("llm"))
	if err != nil {
		logger.Fatal("Failed to create completion client", zap.Error(err))
	}

	inspirationService := services.NewInspirationService(
		statsRepo, suggestionRepo, completionClient,
		cfg.AI.Temperature, services.NewResultStore(), logger.Named("inspiration"))

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionKey))

	handlers.NewReferenceHandler(refCache, logger.Named("reference")).RegisterRoutes(mux)
	handlers.NewJournalHandler(journalService, logger.Named("classes")).RegisterRoutes(mux)
	handlers.NewDashboardHandler(dashboardService, logger.Named("dashboard")).RegisterRoutes(mux)
	handlers.NewHistoryHandler(historyService, logger.Named("history")).RegisterRoutes(mux)
	handlers.NewInspirationHandler(inspirationService, sessionStore, logger.Named("inspiration")).RegisterRoutes(mux)
}
