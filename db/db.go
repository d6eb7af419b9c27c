package db

import (
	"errors"

	"servicoperto-backend/models"
	"servicoperto-backend/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Connect opens the primary store and runs migrations. When the database is
// unreachable the handle is still returned and migration failure is only
// logged: the read endpoints and the leads fallback must keep working in
// degraded mode, so a down database is not fatal.
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is not configured")
	}

	// The automatic ping would fail the open while the database is down;
	// AutoMigrate below probes connectivity instead.
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:               utils.GetGormLogger(),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(
		&models.User{},
		&models.Provider{},
		&models.Plan{},
		&models.Subscription{},
		&models.Lead{},
	); err != nil {
		utils.LogError(err, "Database connection error, starting in degraded mode")
		return database, nil
	}

	seedPlans(database)
	utils.LogSuccess("Database connected successfully")
	return database, nil
}

// seedPlans inserts the built-in catalog once; existing rows are kept as-is
// so admin edits to the activation flag survive restarts.
func seedPlans(database *gorm.DB) {
	for _, plan := range models.DefaultPlans {
		if err := database.Clauses(clause.OnConflict{DoNothing: true}).Create(&plan).Error; err != nil {
			utils.LogError(err, "Error seeding plan "+plan.ID)
		}
	}
}

// Close releases the underlying connection pool.
func Close(database *gorm.DB) {
	if database == nil {
		return
	}
	sqlDB, err := database.DB()
	if err != nil {
		utils.LogError(err, "Error retrieving database handle on shutdown")
		return
	}
	if err := sqlDB.Close(); err != nil {
		utils.LogError(err, "Error closing database connection")
	}
}
