package handlers

import (
	"time"

	"content-catalog/internal/models"
)

// ContentRequest is the body of create and update calls. Every field is
// written; omitted optional fields are stored as null.
type ContentRequest struct {
	Title       string    `json:"title" example:"Evening News"`
	Subtitle    *string   `json:"subtitle" example:"Live"`
	Description *string   `json:"description" example:"Daily news roundup"`
	ImageURL    *string   `json:"image_url" example:"http://localhost:9000/contents/content-images/news_1a2b3c4d.jpg"`
	Duration    int       `json:"duration" example:"45"`
	StartTime   time.Time `json:"start_time" example:"2024-03-10T20:00:00Z"`
	EndTime     time.Time `json:"end_time" example:"2024-03-10T20:45:00Z"`
	Genres      []string  `json:"genres" example:"news,live"`
}

func (r *ContentRequest) toFields() models.ContentFields {
	return models.ContentFields{
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Duration:    r.Duration,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Genres:      models.NewGenreSet(r.Genres...),
	}
}

// DeleteContentResponse carries the id of the removed item.
type DeleteContentResponse struct {
	ID string `json:"id" example:"81144fda-dc9a-4a71-9820-499f2bb57553"`
}

type PresignResponse struct {
	PresignedURL string `json:"presigned_url"`
	PublicURL    string `json:"public_url"`
}
