package app

import (
	"log/slog"

	"balbuss.rs/internal/catalog"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the server configuration, the shared logger, and the
// line catalog manager every resolver operation reads from.
type Application struct {
	Config         Config
	CatalogConfig  catalog.Config
	Logger         *slog.Logger
	CatalogManager *catalog.Manager
}

// Config holds all the configuration settings for our Application: the
// network port the server listens on, the name of the current operating
// environment (development, staging, production, etc.), and the origins
// allowed to call the API from a browser context. Values are read from
// command-line flags, with .env-provided defaults, when the Application
// starts.
type Config struct {
	Port           int
	Env            string
	AllowedOrigins []string
}
