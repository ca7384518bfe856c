package models

import "time"

// Content types accepted by the gallery.
const (
	TypeVideo   = "video"
	TypePhoto   = "photo"
	TypeProgram = "program"
	TypeLink    = "link"
)

const DefaultCategory = "General"

func ValidType(t string) bool {
	switch t {
	case TypeVideo, TypePhoto, TypeProgram, TypeLink:
		return true
	}
	return false
}

type Content struct {
	ID           string    `bson:"_id" json:"id"`
	Type         string    `bson:"type" json:"type"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	URL          string    `bson:"url" json:"url"`
	ThumbnailURL string    `bson:"thumbnail_url,omitempty" json:"thumbnailUrl,omitempty"`
	Tags         []string  `bson:"tags" json:"tags"`
	Category     string    `bson:"category" json:"category"`
	FileSize     string    `bson:"file_size,omitempty" json:"fileSize,omitempty"` // programs only
	Views        int64     `bson:"views" json:"views"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// ContentStats backs the admin dashboard counters.
type ContentStats struct {
	Total      int64            `json:"total"`
	TotalViews int64            `json:"totalViews"`
	ByType     map[string]int64 `json:"byType"`
}
