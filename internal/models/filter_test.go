package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesFilter(t *testing.T) {
	c := &Content{Title: "Evening News", Genres: GenreSet{"Current Affairs", "g6"}}

	tests := []struct {
		name   string
		filter string
		want   bool
	}{
		{"empty matches all", "", true},
		{"title substring", "News", true},
		{"genre substring", "Affairs", true},
		{"genre exact", "g6", true},
		{"title is case sensitive", "news", false},
		{"genre is case sensitive", "current", false},
		{"no trimming", " News ", false},
		{"no match", "Sport", false},
		{"like wildcards are literal", "%", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesFilter(c, tt.filter))
		})
	}
}

func TestMatchesFilter_NoGenres(t *testing.T) {
	c := &Content{Title: "t1"}

	assert.True(t, MatchesFilter(c, "t"))
	assert.False(t, MatchesFilter(c, "g1"))
}
