package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-auth-api/internal/application/notifier"
	"github.com/go-auth-api/internal/config"
	"github.com/go-auth-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/go-auth-api/internal/infrastructure/jwt"
	"github.com/go-auth-api/internal/infrastructure/smtp"
	snsinfra "github.com/go-auth-api/internal/infrastructure/sns"
	"github.com/go-auth-api/internal/pkg/password"
	transporthttp "github.com/go-auth-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap the DynamoDB accounts table (creates it if it doesn't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTableAccounts)

	// Session signer. Unlike most collaborators this one is not optional:
	// without a secret no session can be issued or verified.
	jwtProvider, err := jwtinfra.NewProvider(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("jwt provider: %v", err)
	}

	// SMTP mailer with an optional SNS retry topic for failed deliveries.
	mailer := smtp.NewMailer(cfg)
	var retry snsinfra.RetryPublisher
	if cfg.SNSRetryTopicARN != "" {
		if p, err := snsinfra.NewRetryPublisher(cfg); err == nil {
			retry = p
		} else {
			log.Printf("WARN: SNS retry publisher not available: %v", err)
		}
	}

	deps := &transporthttp.Deps{
		AccountRepo: dynamo.NewAccountRepo(dynamoClient, cfg.DynamoTableAccounts),
		Notifier:    notifier.New(mailer, retry),
		JWTProvider: jwtProvider,
		Hasher:      password.NewHasher(cfg.BcryptCost),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
