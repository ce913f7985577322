package main

import (
	"log"
	"os"

	"local-guide/infra"
	"local-guide/models"
)

// Standalone migration/seed command: creates the schema, bulk-loads the
// catalog from the seed file and clears stale ratings on items without
// reviews.
func main() {
	infra.Initialize()
	db := infra.SetupDB()

	err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.Review{}, &models.Favorite{})
	if err != nil {
		panic("Failed to migrate database")
	}

	seedFile := os.Getenv("SEED_FILE")
	if seedFile == "" {
		seedFile = "data.json"
	}

	count, err := infra.SeedItems(db, seedFile)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Migration complete, %d items in seed file", count)

	cleaned, err := infra.CleanupRatings(db)
	if err != nil {
		log.Fatalf("Rating cleanup failed: %v", err)
	}
	if cleaned > 0 {
		log.Printf("Reset rating on %d item(s) without reviews", cleaned)
	}
}
