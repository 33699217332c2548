package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/newsroom/newsdesk/app/api"
	"github.com/newsroom/newsdesk/app/assistant"
	"github.com/newsroom/newsdesk/app/cfg"
	"github.com/newsroom/newsdesk/app/database"
	"github.com/newsroom/newsdesk/app/news"
	"github.com/newsroom/newsdesk/app/reader"
	"github.com/newsroom/newsdesk/app/speech"
	"github.com/newsroom/newsdesk/app/tasks"
)

// perWord is the simulated playback rate of the speech synthesizer.
const perWord = 300 * time.Millisecond

func main() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Newsdesk server", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DataDir, appCfg.DBFile)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "schema_version", version, "dirty", dirty)

	catalog := news.NewCatalog(appCfg.ArticlesDir)
	if err := catalog.Run(); err != nil {
		slog.Error("Failed to load article catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("Article catalog loaded", "articles", catalog.Count(), "dir", appCfg.ArticlesDir)

	bookmarkRepo := database.NewBookmarkRepository(db)
	prefRepo := database.NewPreferenceRepository(db)

	newsService := news.NewService(catalog)
	readerSession := reader.NewSession(newsService, bookmarkRepo)
	responder := assistant.NewResponder()
	chatSession := assistant.NewSession()
	synthesizer := speech.NewSynthesizer(perWord)

	slog.Info("Starting background scheduler", "workers", appCfg.WorkerCount, "interval", appCfg.SchedulerInterval)
	scheduler := tasks.NewScheduler(catalog)
	scheduler.Start()
	defer scheduler.Stop()

	handler := api.NewHandler(catalog, readerSession, responder, chatSession,
		bookmarkRepo, prefRepo, synthesizer, scheduler)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	synthesizer.Stop()

	// Scheduler is stopped via defer
	slog.Info("Shutdown complete")
}
