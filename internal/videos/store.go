package videos

import (
	"errors"

	"github.com/CampusStream/CS-Backend/internal/db"
	"gorm.io/gorm"
)

// ListByOwner returns the owner's videos in insertion order. Listing is
// always scoped; there is no unscoped variant.
func ListByOwner(ownerID string) ([]Video, error) {
	var out []Video
	err := db.DB.Where("owner_id = ?", ownerID).
		Order("created_at, id").
		Find(&out).Error
	return out, err
}

// ByID loads a single video. The second return is false when no such
// record exists.
func ByID(id string) (*Video, bool, error) {
	var v Video
	err := db.DB.First(&v, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &v, true, nil
}
