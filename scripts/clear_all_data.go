package main

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"project-task-api/pkg/config"
)

// Development helper: wipes all project, task and audit data.
// Run with: go run scripts/clear_all_data.go
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.User, cfg.Database.Password,
		cfg.Database.DBName, cfg.Database.Port, cfg.Database.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Order matters for foreign keys.
	tables := []string{"audit_logs", "tasks", "projects"}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			log.Printf("Failed to truncate %s: %v", table, err)
			continue
		}
		fmt.Printf("Truncated %s\n", table)
	}

	fmt.Println("Done. Ready for fresh testing.")
}
