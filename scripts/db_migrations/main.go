package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/Purvi1411/expense-tracker/internal/config"
	"github.com/Purvi1411/expense-tracker/internal/logging"
	"github.com/Purvi1411/expense-tracker/internal/storage"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}
	logger := logging.SetupLogging(env.LogLevel)

	if env.DataBackend != server_config.BackendPostgres {
		logger.WithField("backend", env.DataBackend).Fatal("migrations need the postgres backend")
		return
	}

	logger.WithFields(logrus.Fields{
		"address":  env.PostgresAddress,
		"port":     env.PostgresPort,
		"database": env.PostgresDB,
	}).Info("Applying migrations")

	result, err := storage.RunMigrations(env.PostgresDSN())
	if err != nil {
		logger.WithError(err).Fatal("storage.RunMigrations")
		return
	}

	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  result.PreMigrationVersion,
		"postMigrationVersion": result.PostMigrationVersion,
	}).Info("Migration status")
}
