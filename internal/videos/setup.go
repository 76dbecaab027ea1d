package videos

import (
	"log"

	"github.com/CampusStream/CS-Backend/internal/config"
	"github.com/CampusStream/CS-Backend/internal/db"
	"github.com/CampusStream/CS-Backend/internal/storage"
)

var (
	cfg       *config.Config
	blobStore storage.BlobStore
)

func Init(c *config.Config, store storage.BlobStore) {
	cfg = c
	blobStore = store

	if err := db.EnsureSchema(db.DB, "app_api"); err != nil {
		log.Fatal("Failed to ensure schema app_api: ", err)
	}

	if err := db.DB.AutoMigrate(&Video{}); err != nil {
		log.Fatal("Failed to auto-migrate tables: ", err)
	}

	// Deleting a user cascades to their videos. AutoMigrate cannot see the
	// users table from this package, so the constraint is applied directly.
	db.DB.Exec(`ALTER TABLE app_api.videos DROP CONSTRAINT IF EXISTS fk_videos_owner`)
	if err := db.DB.Exec(`ALTER TABLE app_api.videos
		ADD CONSTRAINT fk_videos_owner
		FOREIGN KEY (owner_id) REFERENCES app_auth.users (user_id)
		ON DELETE CASCADE`).Error; err != nil {
		log.Fatal("Failed to add videos owner constraint: ", err)
	}
}
