package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/podscout/podscout/app/api"
	"github.com/podscout/podscout/app/cfg"
	"github.com/podscout/podscout/app/database"
	"github.com/podscout/podscout/app/feed"
	"github.com/podscout/podscout/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(appCfg.Debug)

	slog.Info("Starting PodScout server", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DBFile)
	if err != nil {
		slog.Error("Failed to open database", "file", appCfg.DBFile, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	schemaVersion, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "file", appCfg.DBFile, "schema_version", schemaVersion, "dirty", dirty)

	episodeRepo := database.NewEpisodeRepository(db)
	sourceRepo := database.NewSourceRepository(db)

	fetcher := feed.NewFetcher(&http.Client{}, appCfg.UserAgent, time.Duration(appCfg.FetchTimeout)*time.Second)
	validator := feed.NewValidator()
	discoverer := feed.NewDiscoverer(fetcher, validator)
	ingestor := feed.NewIngestor(fetcher, validator, episodeRepo)

	slog.Info("Starting task runner", "workers", appCfg.WorkerCount)
	runner := tasks.NewRunner(appCfg.WorkerCount)
	runner.Start()
	defer runner.Stop()

	if appCfg.SourcesFile != "" {
		seedSources(appCfg.SourcesFile, sourceRepo, ingestor, runner)
	}

	handler := api.NewHandler(episodeRepo, sourceRepo, discoverer, ingestor, runner, appCfg.Version)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("HTTP server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Task runner is stopped via defer
	slog.Info("Shutdown complete")
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// seedSources registers every feed listed in the sources file and enqueues an
// initial ingestion for each. A source failing to ingest stays registered
// with a NULL last_updated until an ingestion succeeds.
func seedSources(path string, sourceRepo database.SourceStore, ingestor *feed.Ingestor, runner tasks.TaskRunnerInterface) {
	sources, err := feed.LoadSources(path)
	if err != nil {
		slog.Error("Failed to load sources file", "file", path, "error", err)
		os.Exit(1)
	}

	slog.Info("Seeding sources", "file", path, "count", len(sources))

	for _, feedURL := range sources {
		if err := runner.EnqueueTask(tasks.NewRegisterSourceTask(feedURL, sourceRepo)); err != nil {
			slog.Warn("Failed to enqueue RegisterSourceTask", "feed", feedURL, "error", err)
			continue
		}
		if err := runner.EnqueueTask(tasks.NewIngestFeedTask(feedURL, ingestor)); err != nil {
			slog.Warn("Failed to enqueue IngestFeedTask", "feed", feedURL, "error", err)
		}
	}
}
