package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"helpdesk/internal/api"
	"helpdesk/internal/app/service"
	"helpdesk/internal/domain/repository"
	"helpdesk/internal/platform/config"
	"helpdesk/internal/platform/database"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DBConnStr, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()
	logger.Info("database connected")

	if err := database.EnsureSchema(db); err != nil {
		logger.Fatal("schema setup failed", zap.Error(err))
	}

	userRepo := repository.NewPgUserRepository(db)
	ticketRepo := repository.NewPgTicketRepository(db)
	commentRepo := repository.NewPgCommentRepository(db)
	banRepo := repository.NewPgBanRepository(db)

	userService := service.NewUserService(userRepo, banRepo)
	ticketService := service.NewTicketService(ticketRepo)
	commentService := service.NewCommentService(commentRepo)
	banService := service.NewBanService(banRepo)

	router := api.NewRouter(userService, ticketService, commentService, banService, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-stop

	logger.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped gracefully")
}
