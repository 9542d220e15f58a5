package models

import "time"

// MediaItem yalnızca public görünümde gösterilen bir medya öğesidir.
// Çekirdek bunları dışarıdan hazır alır; oluşturma/düzenleme akışı yoktur.
type MediaItem struct {
	Type        string `json:"type"` // image | video | document
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

const (
	MediaTypeImage    = "image"
	MediaTypeVideo    = "video"
	MediaTypeDocument = "document"
)

// Review public görünümde gösterilen bir değerlendirmedir (salt okunur).
type Review struct {
	Reviewer  string    `json:"reviewer"`
	Rating    int       `json:"rating"` // 1-5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
