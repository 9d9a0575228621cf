package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ynz20/AppPerruqueriaApi/internal/config"
	"github.com/ynz20/AppPerruqueriaApi/internal/logger"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.Log.Fatal("no s'ha pogut connectar a la base de dades", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		logger.Log.Fatal("failed to migrate", zap.Error(err))
	}

	// Índex parcial: garanteix a nivell d'esquema que només hi pot haver
	// un torn obert (end_time NULL) alhora.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_shifts_single_open
        ON shifts ((end_time IS NULL)) WHERE end_time IS NULL
    `)

	return db
}

// Migrate és a part perquè els tests el puguin fer servir amb sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.Shift{},
		&models.Product{},
		&models.Reservation{},
		&models.AuditLog{},
	)
}
