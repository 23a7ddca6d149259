package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ArushKhare/LockedInterview/internal/config"
	"github.com/ArushKhare/LockedInterview/internal/logger"
	"github.com/ArushKhare/LockedInterview/internal/questions"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Initialize handlers
	questionHandler := questions.NewHandler(questions.NewService(cfg.SampleSize), log)

	server := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      newRouter(cfg, questionHandler, log),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("LockedInterview API listening",
			zap.String("addr", "http://localhost"+cfg.ServerAddr()),
			zap.String("env", cfg.Env),
		)
		log.Info("frontend available", zap.String("url", "http://localhost"+cfg.ServerAddr()+"/frontend.html"))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}
