package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/repository"
	"github.com/canakboyraz/StokTakipUygulamasi/pkg/config"
	"github.com/canakboyraz/StokTakipUygulamasi/pkg/database"
)

// Drops all categories and reinserts the default set.
// The server seeds missing defaults on startup; this tool is for a clean reset.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGormConnection(database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&domain.Category{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := db.Exec("DELETE FROM categories").Error; err != nil {
		log.Fatalf("Failed to clear categories: %v", err)
	}

	if err := repository.NewGormCategoryRepository(db).SeedDefaults(); err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	log.Printf("Seeded %d default categories", len(domain.DefaultCategories))
	for _, name := range domain.DefaultCategories {
		log.Printf("  - %s", name)
	}
}
