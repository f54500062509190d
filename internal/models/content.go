package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Content is a catalog entry as seen by callers of the store.
type Content struct {
	ID          uuid.UUID `json:"id" example:"81144fda-dc9a-4a71-9820-499f2bb57553"`
	Title       string    `json:"title" example:"Evening News"`
	Subtitle    *string   `json:"subtitle,omitempty" example:"Live"`
	Description *string   `json:"description,omitempty" example:"Daily news roundup"`
	ImageURL    *string   `json:"image_url,omitempty" example:"https://cdn.example.com/contents/news.jpg"`
	Duration    int       `json:"duration" example:"45"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Genres      GenreSet  `json:"genres"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContentFields carries every writable attribute of a content item.
// Update applies all of them, including zero values.
type ContentFields struct {
	Title       string
	Subtitle    *string
	Description *string
	ImageURL    *string
	Duration    int
	StartTime   time.Time
	EndTime     time.Time
	Genres      GenreSet
}

func (f ContentFields) Validate() error {
	if f.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	for _, g := range f.Genres {
		if g == "" {
			return &ValidationError{Field: "genres", Message: "genre tags must not be empty"}
		}
	}
	return nil
}

// FieldsOf returns the writable attributes of c, used when a genre change
// has to write the scalar fields back unchanged.
func FieldsOf(c *Content) ContentFields {
	return ContentFields{
		Title:       c.Title,
		Subtitle:    c.Subtitle,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Duration:    c.Duration,
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		Genres:      c.Genres.Clone(),
	}
}

type ContentRecord struct {
	ID          string               `gorm:"primaryKey;size:36"`
	Title       string               `gorm:"not null;index"`
	Subtitle    *string              `gorm:"size:512"`
	Description *string              `gorm:"type:text"`
	ImageURL    *string              `gorm:"size:1024"`
	Duration    int                  `gorm:"not null;default:0"`
	StartTime   time.Time            `gorm:"index"`
	EndTime     time.Time            `gorm:"index"`
	Genres      []ContentGenreRecord `gorm:"foreignKey:ContentID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time            `gorm:"index"`
	UpdatedAt   time.Time
}

func (ContentRecord) TableName() string {
	return "contents"
}

type ContentGenreRecord struct {
	ContentID string `gorm:"primaryKey;size:36"`
	Genre     string `gorm:"primaryKey;size:255"`
	Position  int    `gorm:"not null"`
}

func (ContentGenreRecord) TableName() string {
	return "content_genres"
}

// ToRecords maps fields onto the row layout. The genre rows are returned
// separately and are never saved through the association.
func ToRecords(id uuid.UUID, fields ContentFields, now time.Time) (ContentRecord, []ContentGenreRecord) {
	rec := ContentRecord{
		ID:          id.String(),
		Title:       fields.Title,
		Subtitle:    fields.Subtitle,
		Description: fields.Description,
		ImageURL:    fields.ImageURL,
		Duration:    fields.Duration,
		StartTime:   fields.StartTime.UTC(),
		EndTime:     fields.EndTime.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return rec, GenreRecords(id, fields.Genres)
}

func GenreRecords(id uuid.UUID, genres GenreSet) []ContentGenreRecord {
	set := NewGenreSet(genres...)
	rows := make([]ContentGenreRecord, 0, len(set))
	for i, g := range set {
		rows = append(rows, ContentGenreRecord{
			ContentID: id.String(),
			Genre:     g,
			Position:  i,
		})
	}
	return rows
}

// FromRecords builds a Content from its row and genre rows. Genre rows must
// already be ordered by position.
func FromRecords(rec ContentRecord, genres []ContentGenreRecord) (*Content, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid content id %q: %w", rec.ID, err)
	}

	tags := make([]string, 0, len(genres))
	for _, g := range genres {
		tags = append(tags, g.Genre)
	}

	return &Content{
		ID:          id,
		Title:       rec.Title,
		Subtitle:    rec.Subtitle,
		Description: rec.Description,
		ImageURL:    rec.ImageURL,
		Duration:    rec.Duration,
		StartTime:   rec.StartTime.UTC(),
		EndTime:     rec.EndTime.UTC(),
		Genres:      NewGenreSet(tags...),
		CreatedAt:   rec.CreatedAt.UTC(),
		UpdatedAt:   rec.UpdatedAt.UTC(),
	}, nil
}
