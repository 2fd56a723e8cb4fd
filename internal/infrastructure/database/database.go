package database

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/logger"
)

// SchemaRegistry collects the models dbschema registers for automigration.
var SchemaRegistry []interface{}

// RegisterSchemaForAutoMigrate adds models to the automigrate registry.
func RegisterSchemaForAutoMigrate(models ...interface{}) {
	SchemaRegistry = append(SchemaRegistry, models...)
}

// Config holds database configuration
type Config struct {
	DatabaseURL string
	MaxIdle     int
	MaxOpen     int
	MaxLifetime time.Duration
	LogLevel    gormlogger.LogLevel
}

// Connect creates a new database connection with the given configuration
func Connect(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "coaching.",
			SingularTable: false,
		},
		Logger: gormlogger.Default.LogMode(cfg.LogLevel),
	})
	if err != nil {
		log := logger.GetLogger()
		log.Error().Err(err).Msg("unable to connect to database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetConnMaxLifetime(cfg.MaxLifetime)

	return db, nil
}

// NewDB creates a new database connection using DSN
func NewDB(dsn string) (*gorm.DB, error) {
	return Connect(Config{
		DatabaseURL: dsn,
		MaxIdle:     10,
		MaxOpen:     25,
		MaxLifetime: 1 * time.Hour,
		LogLevel:    gormlogger.Silent,
	})
}

// AutoMigrate creates the coaching schema and migrates every registered model.
func AutoMigrate(db *gorm.DB) error {
	log := logger.GetLogger()

	if err := db.Exec("CREATE SCHEMA IF NOT EXISTS coaching").Error; err != nil {
		log.Warn().Err(err).Msg("failed to create coaching schema, may already exist")
	}

	if err := db.AutoMigrate(SchemaRegistry...); err != nil {
		return err
	}
	log.Info().Int("models", len(SchemaRegistry)).Msg("database migration complete")
	return nil
}
