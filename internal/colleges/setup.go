package colleges

import (
	"log"

	"github.com/CampusStream/CS-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "app_api"); err != nil {
		log.Fatal("Failed to ensure schema app_api: ", err)
	}

	if err := db.DB.AutoMigrate(&College{}); err != nil {
		log.Fatal("Failed to auto-migrate tables: ", err)
	}
}
