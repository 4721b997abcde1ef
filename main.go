package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/minion-meister/cliparse"
	"github.com/danielhkuo/minion-meister/db"
	"github.com/danielhkuo/minion-meister/middleware"
	"github.com/danielhkuo/minion-meister/router"
	"github.com/danielhkuo/minion-meister/seed"
	"github.com/danielhkuo/minion-meister/store"
)

func main() {
	var err error

	// Optional .env file for DATABASE_FILE and friends
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := openDatabase(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Create the roster store
	st := store.New(dbConn, store.Config{})

	// Restore-and-exit maintenance mode
	if cfg.SeedFile != "" {
		if err := seed.Restore(context.Background(), st, cfg.SeedFile); err != nil {
			slog.Error("roster restore failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Create router
	mux := router.NewRouter(st)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func openDatabase(cfg cliparse.Config) (*sql.DB, error) {
	if cfg.DatabaseType == db.DriverPostgres {
		return sql.Open("postgres", cfg.DatabaseURL)
	}
	// Single-file SQLite with a busy timeout so concurrent commands queue
	// instead of failing
	return sql.Open("sqlite", cfg.DatabaseFile+"?_journal_mode=WAL&_busy_timeout=5000")
}
