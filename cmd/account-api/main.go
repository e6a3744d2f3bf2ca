package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/ployem/account-api/internal/config"
	"github.com/ployem/account-api/internal/handler"
	"github.com/ployem/account-api/internal/mailer"
	"github.com/ployem/account-api/internal/repository"
	"github.com/ployem/account-api/internal/token"
	"github.com/ployem/account-api/internal/usecase"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.NewConfig(&logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	db := client.Database(cfg.MongoDatabase)

	accountRepo := repository.NewAccountMongoRepository(ctx, &logger, db)
	sessionRepo := repository.NewSessionMongoRepository(db)

	smtpMailer := mailer.NewMailer(&logger)
	tokenAuth := token.NewAuthenticator(cfg.Token.Issuer, cfg.Token.Issuer)

	accountUsecase := usecase.NewAccountUsecase(accountRepo)
	verificationUsecase := usecase.NewVerificationUsecase(accountRepo, smtpMailer, &logger)
	authUsecase := usecase.NewAuthUsecase(accountRepo, sessionRepo, tokenAuth, cfg.Token)

	authHandler := handler.NewAuthHandler(accountUsecase, verificationUsecase, authUsecase, &logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	authHandler.RegisterRoutes(r)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: r,
	}

	go func() {
		logger.Info().Str("address", cfg.ServerAddress).Msg("account service listening")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to serve HTTP")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down HTTP server")
	}
}
