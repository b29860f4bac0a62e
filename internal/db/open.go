package db

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fitness_tracker/internal/config"

	"github.com/glebarez/sqlite"             // Pure-Go SQLite driver for GORM
	gomysql "github.com/go-sql-driver/mysql" // MySQL DSN builder
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"    // MySQL driver for GORM
	"gorm.io/driver/postgres" // PostgreSQL driver for GORM
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the store selected by cfg.Driver
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true, // Surface unique violations as gorm.ErrDuplicatedKey
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             500 * time.Millisecond, // Log queries slower than 500ms
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true, // Lookups of unknown ids are expected
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database handle: %w", err)
	}
	if cfg.Driver == "sqlite" {
		// SQLite allows one writer; a single connection also keeps in-memory databases alive
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping %s database: %w", cfg.Driver, err)
	}
	return db, nil
}

// Dialector picks the GORM driver for cfg
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite", "":
		return sqlite.Open(SQLiteDSN(cfg.Path)), nil
	case "mysql":
		return mysql.Open(MySQLDSN(cfg)), nil
	case "postgres":
		return postgres.Open(PostgresDSN(cfg)), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// SQLiteDSN turns on foreign key enforcement, which SQLite leaves off by default
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// MySQLDSN builds a MySQL data source name with time parsing and found-rows counting enabled
func MySQLDSN(cfg config.DatabaseConfig) string {
	c := gomysql.NewConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = cfg.Host + ":" + strconv.Itoa(portOr(cfg.Port, 3306))
	c.DBName = cfg.Name
	c.ParseTime = true
	c.Loc = time.Local
	c.ClientFoundRows = true // Count matched rows, so rewriting an unchanged value still affects one row
	return c.FormatDSN()
}

// PostgresDSN builds a key/value PostgreSQL connection string
func PostgresDSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable application_name=fitness_tracker",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, portOr(cfg.Port, 5432))
}

func portOr(port, fallback int) int {
	if port > 0 {
		return port
	}
	return fallback
}
