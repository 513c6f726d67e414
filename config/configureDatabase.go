package config

import (
	"log"

	"plot-sales-backend/db/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// allModels defines all models that should be migrated.
// This is the only place you need to add new models.
var allModels = []interface{}{
	&models.Property{},
	&models.PaymentPlan{},
	&models.Application{},
	&models.Buyer{},
	&models.Payment{},
	&models.Activity{},
}

// ConfigureDatabase opens the in-memory entity store and migrates all models.
// The portal works on a seeded in-memory snapshot; nothing is written to disk.
func ConfigureDatabase() *gorm.DB {
	dsn := GetEnvOrDefault("DB_DSN", ":memory:")

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("[DB-CONNECT] Failed to open entity store: %v", err)
	}

	err = db.AutoMigrate(allModels...)
	if err != nil {
		log.Fatalf("failed to migrate tables: %v", err)
	} else {
		log.Println("Tables migrated successfully")
	}

	log.Println("[DB-STATUS] Entity store setup complete")
	return db
}
