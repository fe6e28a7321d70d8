package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/Purvi1411/expense-tracker/api"
	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/config"
	"github.com/Purvi1411/expense-tracker/internal/events"
	"github.com/Purvi1411/expense-tracker/internal/logging"
	"github.com/Purvi1411/expense-tracker/internal/operator"
	"github.com/Purvi1411/expense-tracker/internal/service"
	"github.com/Purvi1411/expense-tracker/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.WithField("backend", envConfig.DataBackend).Info("expense-tracker starting")

	if envConfig.MigrateOnStart && envConfig.DataBackend == config.BackendPostgres {
		result, err := storage.RunMigrations(envConfig.PostgresDSN())
		if err != nil {
			logger.WithError(err).Fatal("storage.RunMigrations")
			return
		}
		logger.WithFields(logrus.Fields{
			"preMigrationVersion":  result.PreMigrationVersion,
			"postMigrationVersion": result.PostMigrationVersion,
		}).Info("Migration status")
	}

	store, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer store.Close()

	publisher := newPublisher(envConfig, logger)
	defer publisher.Close()

	delegator := operator.NewOperatorDelegator(publisher, logger, envConfig.EventWorkers, envConfig.EventQueueSize)
	delegator.Start()
	defer delegator.Stop()

	tokens := auth.NewTokenIssuer(envConfig.JWTSecret, envConfig.TokenTTL)
	svc := service.NewService(store, tokens, delegator, service.ClockIn(envConfig.Location()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.HTTPPort,
		Service: svc,
		Tokens:  tokens,
		Storage: store,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("api.Rest.Serve")
	}
	logger.Info("expense-tracker stopped")
}

// newPublisher falls back to a no-op publisher when AMQP is not configured or
// unreachable; change events are best-effort.
func newPublisher(envConfig *config.Config, logger *logrus.Logger) events.Publisher {
	if envConfig.AMQPURL == "" {
		return events.NopPublisher{}
	}
	publisher, err := events.NewAMQPPublisher(envConfig.AMQPURL, envConfig.AMQPExchange)
	if err != nil {
		logger.WithError(err).Warn("events.NewAMQPPublisher, change events disabled")
		return events.NopPublisher{}
	}
	return publisher
}
