package auth

import (
	"log"

	"github.com/CampusStream/CS-Backend/internal/config"
	"github.com/CampusStream/CS-Backend/internal/db"
)

var cfg *config.Config

func Init(c *config.Config) {
	cfg = c

	if err := db.EnsureSchema(db.DB, "app_auth"); err != nil {
		log.Fatal("Failed to ensure schema app_auth: ", err)
	}

	if err := db.DB.AutoMigrate(&User{}, &Session{}); err != nil {
		log.Fatal("Failed to auto-migrate tables: ", err)
	}
}
