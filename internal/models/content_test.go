package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestContentFields_Validate(t *testing.T) {
	assert.NoError(t, ContentFields{Title: "t1"}.Validate())

	err := ContentFields{}.Validate()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	err = ContentFields{Title: "t1", Genres: GenreSet{"g1", ""}}.Validate()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestRecordMapping_RoundTrip(t *testing.T) {
	id := uuid.New()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fields := ContentFields{
		Title:       "t3",
		Subtitle:    strPtr("sub"),
		Description: nil,
		ImageURL:    strPtr("https://cdn.example.com/a.jpg"),
		Duration:    90,
		StartTime:   now,
		EndTime:     now.Add(90 * time.Minute),
		Genres:      GenreSet{"g5", "g6", "g5"},
	}

	rec, genres := ToRecords(id, fields, now)
	require.Len(t, genres, 2)
	assert.Equal(t, 0, genres[0].Position)
	assert.Equal(t, 1, genres[1].Position)
	assert.Nil(t, rec.Genres)

	c, err := FromRecords(rec, genres)
	require.NoError(t, err)
	assert.Equal(t, id, c.ID)
	assert.Equal(t, "t3", c.Title)
	assert.Equal(t, "sub", *c.Subtitle)
	assert.Nil(t, c.Description)
	assert.Equal(t, 90, c.Duration)
	assert.True(t, fields.EndTime.Equal(c.EndTime))
	assert.Equal(t, GenreSet{"g5", "g6"}, c.Genres)
}

func TestFromRecords_InvalidID(t *testing.T) {
	_, err := FromRecords(ContentRecord{ID: "nope", Title: "t"}, nil)
	assert.Error(t, err)
}

func TestFieldsOf_ClonesGenres(t *testing.T) {
	c := &Content{Title: "t1", Genres: GenreSet{"g1"}}
	f := FieldsOf(c)
	f.Genres[0] = "changed"

	assert.Equal(t, GenreSet{"g1"}, c.Genres)
}
