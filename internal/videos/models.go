package videos

import "time"

type Video struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `json:"description"`
	FileRef     string    `gorm:"not null" json:"file_ref"`
	OwnerID     string    `gorm:"index;not null" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Video) TableName() string { return "app_api.videos" }

// VideoResponse is the wire shape of a video. The file reference keeps the
// "videos" key the frontend already consumes.
type VideoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Videos      string    `json:"videos"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToResponse(v Video) VideoResponse {
	return VideoResponse{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Videos:      v.FileRef,
		CreatedAt:   v.CreatedAt,
	}
}

func ToResponses(vs []Video) []VideoResponse {
	out := make([]VideoResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, ToResponse(v))
	}
	return out
}
