package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legalzen-backend/analyzer"
	"legalzen-backend/config"
	"legalzen-backend/handlers"
	"legalzen-backend/logging"
	"legalzen-backend/metrics"
	"legalzen-backend/repository"
	"legalzen-backend/service"
	"legalzen-backend/storage"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.Log)
	defer logger.Sync()

	if cfg.App.GinMode != "" {
		gin.SetMode(cfg.App.GinMode)
	} else if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize storage
	fileStorage, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	logger.Info("storage initialized", logging.String("type", string(fileStorage.Type())))

	m := metrics.New(true)
	sessions := repository.NewSessionRepository()

	engine := analyzer.New(
		analyzer.WithLogger(logger.Named("analyzer")),
		analyzer.WithFallbackHook(func(error) { m.IncFallback() }),
	)

	// Initialize services
	documentService := service.NewDocumentService(
		service.DocumentWithAnalyzer(engine),
		service.DocumentWithSessionRepository(sessions),
		service.DocumentWithStorage(fileStorage),
		service.DocumentWithLogger(logger.Named("documents")),
		service.DocumentWithMetrics(m),
		service.DocumentWithMaxUploadBytes(cfg.App.MaxUploadBytes),
		service.DocumentWithRetention(cfg.Session.Retention),
		service.DocumentWithKeepUploads(cfg.App.KeepUploads),
	)

	questionService := service.NewQuestionService(
		service.QuestionWithAnalyzer(engine),
		service.QuestionWithSessionRepository(sessions),
		service.QuestionWithLogger(logger.Named("questions")),
		service.QuestionWithMetrics(m),
	)

	// Initialize handlers
	documentHandler := handlers.NewDocumentHandler(documentService, questionService, logger.Named("handlers"))

	r := handlers.NewRouter(handlers.RouterConfig{
		Documents: documentHandler,
		Logger:    logger,
		Metrics:   m,
	})
	r.MaxMultipartMemory = cfg.App.MaxUploadBytes

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go documentService.RunSweeper(ctx, cfg.Session.SweepInterval)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", logging.String("port", cfg.App.Port), logging.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", logging.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", logging.Err(err))
	}
}
