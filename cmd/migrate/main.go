// Command migrate creates or updates the chat tables in MySQL.
package main

import (
	"github.com/sirupsen/logrus"

	"gotravel/internal/config"
	"gotravel/internal/dbmysql"
	"gotravel/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	log, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}
	defer closeLog()
	logrus.RegisterExitHandler(func() { _ = closeLog() })

	db, err := dbmysql.NewMySQL(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer dbmysql.Close(db)

	if err := dbmysql.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}
	log.Info("Database migration completed")
}
