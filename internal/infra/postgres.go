package infra

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trivia/internal/config"
	"trivia/internal/models/db_models"
)

// DefaultCategories are inserted, in id order, into an empty categories table.
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

// InitDatabase opens the store selected by cfg.DBDriver.
func InitDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.PostgresURL)
	case config.DriverSqlite:
		dialector = sqlite.Open(cfg.SqlitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}

	log.Info("database connected", zap.String("driver", cfg.DBDriver))
	return db, nil
}

// InitSqliteMemory opens a private in-memory sqlite database. A single
// connection keeps every query on the same in-memory instance.
func InitSqliteMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&db_models.Category{}, &db_models.Question{})
}

// SeedCategories inserts DefaultCategories when no category exists yet.
func SeedCategories(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&db_models.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	categories := make([]db_models.Category, 0, len(DefaultCategories))
	for _, name := range DefaultCategories {
		categories = append(categories, db_models.Category{Name: name})
	}
	if err := db.WithContext(ctx).Create(&categories).Error; err != nil {
		return 0, err
	}
	return len(categories), nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func CloseDatabase(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("get database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("close database connection", zap.Error(err))
	} else {
		log.Info("database connection closed")
	}
}
