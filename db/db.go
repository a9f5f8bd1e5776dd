package db

import (
	"yatube/config"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var Instance *gorm.DB

// Init opens the database configured via MYSQL_DSN, POSTGRES_DSN or SQLITE_FILE (in that order)
func Init() {
	var err error
	if config.MYSQL_DSN != "" {
		err = InitMySQL(config.MYSQL_DSN)
	} else if config.POSTGRES_DSN != "" {
		err = Open(postgres.Open(config.POSTGRES_DSN))
	} else {
		err = InitSQLite(config.SQLITE_FILE)
	}
	if err != nil || Instance == nil {
		panic(err)
	}
}

func Open(dialector gorm.Dialector) error {
	logLevel := logger.Silent
	if config.DEBUG_MODE {
		logLevel = logger.Warn
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            dialector.Name() != "sqlite", // a single SQLite connection can't prepare while in a transaction
		Logger:                 logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return err
	}
	Close()
	Instance = db
	log.Info().Str("dialect", dialector.Name()).Msg("Database opened")
	return nil
}

// InitMySQL makes sure timestamps are parsed and utf8mb4 is used, whatever the DSN says
func InitMySQL(dsn string) error {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return err
	}
	cfg.ParseTime = true
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	cfg.Params["charset"] = "utf8mb4"
	return Open(gormmysql.Open(cfg.FormatDSN()))
}

// InitSQLite opens a SQLite database with foreign keys enforced.
// A single connection is kept, so ":memory:" databases live as long as the Instance.
func InitSQLite(file string) error {
	if err := Open(sqlite.Open(file)); err != nil {
		return err
	}
	sqlDB, err := Instance.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	return Instance.Exec("PRAGMA foreign_keys = ON").Error
}

func Close() {
	if Instance == nil {
		return
	}
	if sqlDB, err := Instance.DB(); err == nil {
		_ = sqlDB.Close()
	}
	Instance = nil
}
