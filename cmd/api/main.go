package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"balbuss.rs/internal/app"
	"balbuss.rs/internal/catalog"
	"balbuss.rs/internal/restapi"
)

const defaultLinesURL = "https://balbuss.rs/wp-json/balbuss/v1/lines"

// envOr reads an environment variable with a fallback, so .env values
// become flag defaults.
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// Values from .env act as defaults; explicit flags still win.
	_ = godotenv.Load()

	var cfg app.Config
	var catalogCfg catalog.Config
	var originsFlag string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", envOr("BALBUSS_ENV", "development"), "Environment (development|staging|production)")
	flag.StringVar(&originsFlag, "allowed-origins", envOr("BALBUSS_ALLOWED_ORIGINS", ""), "Comma separated CORS origins (empty allows all)")
	flag.StringVar(&catalogCfg.LinesURL, "lines-url", envOr("BALBUSS_LINES_URL", defaultLinesURL), "URL or local path for the bus lines catalog")
	flag.DurationVar(&catalogCfg.RefreshInterval, "catalog-refresh", time.Hour, "How often to re-fetch the catalog")
	flag.BoolVar(&catalogCfg.Verbose, "verbose", false, "Log catalog refreshes")
	flag.Parse()

	if originsFlag != "" {
		cfg.AllowedOrigins = strings.Split(originsFlag, ",")
		for i := range cfg.AllowedOrigins {
			cfg.AllowedOrigins[i] = strings.TrimSpace(cfg.AllowedOrigins[i])
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	catalogManager, err := catalog.InitManager(catalogCfg, logger)
	if err != nil {
		// Keep serving: the manager retries on its refresh schedule and
		// handlers answer 503 until a snapshot lands.
		logger.Error("initial catalog fetch failed", "error", err)
	}
	defer catalogManager.Shutdown()

	application := &app.Application{
		Config:         cfg,
		CatalogConfig:  catalogCfg,
		Logger:         logger,
		CatalogManager: catalogManager,
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Router(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env, "lines_url", catalogCfg.LinesURL)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
