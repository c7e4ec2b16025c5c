package main

import (
	"fmt"
	"log"
	"os"

	"github.com/classpulse/engage-backend/internal/config"
	"github.com/classpulse/engage-backend/internal/migration"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Standalone schema migration runner for deploys where the API server
// should not alter tables itself.
func main() {
	config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	cfg, err := config.Load(fmt.Sprintf("configs/config.%s.yaml", env))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migration complete")
}
