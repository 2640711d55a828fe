package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quickqualified/exteriors-api/internal/api/router"
	appconfig "github.com/quickqualified/exteriors-api/internal/config"
	"github.com/quickqualified/exteriors-api/internal/content"
	"github.com/quickqualified/exteriors-api/internal/leads"
	"github.com/quickqualified/exteriors-api/internal/notify"
	"github.com/quickqualified/exteriors-api/internal/observability/metrics"
	"github.com/quickqualified/exteriors-api/internal/uploads"
	"github.com/quickqualified/exteriors-api/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting exteriors-api server", "env", cfg.Env, "port", cfg.Port)

	awsCfg, err := appconfig.LoadAWSConfig(context.Background(), cfg)
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}

	var repo leads.Repository
	if cfg.UseMemoryStore {
		logger.Warn("using in-memory lead store; submissions are lost on restart")
		repo = leads.NewInMemoryRepository()
	} else {
		repo = leads.NewDynamoRepository(dynamodb.NewFromConfig(awsCfg), cfg.LeadsTable, logger)
	}

	var uploader leads.AttachmentUploader
	if cfg.UploadsBucket != "" {
		s3Client := s3.NewFromConfig(awsCfg)
		uploader = uploads.NewUploader(s3Client, s3.NewPresignClient(s3Client), cfg.UploadsBucket, logger)
	} else {
		logger.Info("no uploads bucket configured; photo uploads are disabled")
	}

	mailer := notify.NewLeadMailer(buildEmailSender(cfg, awsCfg, logger), notify.LeadMailerConfig{
		To:            cfg.NotifyToEmail,
		ConsoleRegion: cfg.AWSRegion,
		ConsoleTable:  cfg.LeadsTable,
	}, logger)

	intakeMetrics := metrics.NewIntakeMetrics(nil)

	leadsHandler := leads.NewHandler(leads.HandlerConfig{
		Repo:           repo,
		Uploader:       uploader,
		Notifier:       mailer,
		Metrics:        intakeMetrics,
		Logger:         logger,
		CallTimeout:    cfg.ExternalCallTimeout,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})
	contentHandler := content.NewHandler(content.DefaultProfile(), logger)

	r := router.New(&router.Config{
		Logger:             logger,
		LeadsHandler:       leadsHandler,
		ContentHandler:     contentHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildEmailSender picks the notification channel: SendGrid when an API key
// is present, SES when explicitly selected, otherwise nothing. A nil sender
// means saved leads report "notification failed" rather than losing the lead.
func buildEmailSender(cfg *appconfig.Config, awsCfg aws.Config, logger *logging.Logger) notify.EmailSender {
	switch cfg.EmailProvider {
	case "ses":
		return notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.NotifyFromEmail,
			FromName:  cfg.NotifyFromName,
		}, logger)
	case "none":
		return notify.NewStubEmailSender(logger)
	}

	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.NotifyFromEmail,
		FromName:  cfg.NotifyFromName,
	}, logger); sg != nil {
		return sg
	}

	if cfg.EmailProvider == "auto" {
		return notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.NotifyFromEmail,
			FromName:  cfg.NotifyFromName,
		}, logger)
	}

	logger.Warn("no email sender configured; lead notifications will fail")
	return nil
}
