package main

import (
	"log"

	"github.com/joho/godotenv"

	"hotel-persistence/config"
	"hotel-persistence/models"
)

// Bootstrap binary: drops and recreates the schema, then loads the
// sample data set. Destroys any existing content, so it is meant for
// fresh setups only.
func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()
	if cfg.VNPay.TmnCode == "" || cfg.VNPay.HashSecret == "" {
		log.Println("⚠️  VNPay credentials not set; payment checkout will not work until they are")
	}
	log.Printf("✅ Configuration loaded (cloudinary: %s, page size: %d)", cfg.Cloudinary.CloudName, cfg.PageSize)

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	log.Println("✅ Database connection established")

	if err := config.ResetAndSeed(db); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	var users, rooms, rentals, receipts int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Room{}).Count(&rooms)
	db.Model(&models.RoomRental{}).Count(&rentals)
	db.Model(&models.Receipt{}).Count(&receipts)
	log.Printf("✅ Seed completed: %d users, %d rooms, %d rentals, %d receipts", users, rooms, rentals, receipts)
}
