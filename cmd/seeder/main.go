package main

import (
	"log"

	"github.com/CristianV1-A/idoe-projeto/internal/config"
	"github.com/CristianV1-A/idoe-projeto/internal/database"
	"github.com/CristianV1-A/idoe-projeto/internal/models"
	"github.com/CristianV1-A/idoe-projeto/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("Running migrations (just in case)...")
	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.ClothingItem{},
		&models.Chat{},
		&models.Message{},
	); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	users, err := seeds.SeedUsers()
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	if err := seeds.SeedItems(users); err != nil {
		log.Fatalf("Failed to seed items: %v", err)
	}

	log.Println("Seeding complete")
}
