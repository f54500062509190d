package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGenreSet(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want GenreSet
	}{
		{"empty", nil, GenreSet{}},
		{"unique", []string{"g1", "g2"}, GenreSet{"g1", "g2"}},
		{"duplicates keep first", []string{"g2", "g1", "g2"}, GenreSet{"g2", "g1"}},
		{"case sensitive", []string{"Drama", "drama"}, GenreSet{"Drama", "drama"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewGenreSet(tt.in...))
		})
	}
}

func TestGenreSet_Add(t *testing.T) {
	tests := []struct {
		name    string
		current GenreSet
		add     []string
		want    GenreSet
	}{
		{"into empty", GenreSet{}, []string{"g1"}, GenreSet{"g1"}},
		{"new and existing", GenreSet{"g5", "g6"}, []string{"g6", "g7"}, GenreSet{"g5", "g6", "g7"}},
		{"existing moves to requested position", GenreSet{"g1", "g2", "g3"}, []string{"g1"}, GenreSet{"g2", "g3", "g1"}},
		{"duplicate request", GenreSet{"g1"}, []string{"g2", "g2"}, GenreSet{"g1", "g2"}},
		{"nothing requested", GenreSet{"g1", "g2"}, nil, GenreSet{"g1", "g2"}},
		{"case sensitive", GenreSet{"drama"}, []string{"Drama"}, GenreSet{"drama", "Drama"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.current.Add(tt.add))
		})
	}
}

func TestGenreSet_AddIsIdempotent(t *testing.T) {
	current := GenreSet{"g1", "g2", "g3"}
	req := []string{"g2", "g4"}

	once := current.Add(req)
	twice := once.Add(req)

	assert.Equal(t, once, twice)
}

func TestGenreSet_AddDoesNotMutateReceiver(t *testing.T) {
	current := GenreSet{"g1", "g2"}
	_ = current.Add([]string{"g1", "g3"})

	assert.Equal(t, GenreSet{"g1", "g2"}, current)
}

func TestGenreSet_Remove(t *testing.T) {
	tests := []struct {
		name    string
		current GenreSet
		remove  []string
		want    GenreSet
	}{
		{"present", GenreSet{"g5", "g6", "g7"}, []string{"g5"}, GenreSet{"g6", "g7"}},
		{"absent is a no-op", GenreSet{"g1", "g2"}, []string{"g9"}, GenreSet{"g1", "g2"}},
		{"mixed", GenreSet{"g1", "g2", "g3"}, []string{"g3", "g9", "g1"}, GenreSet{"g2"}},
		{"all", GenreSet{"g1"}, []string{"g1"}, GenreSet{}},
		{"case sensitive", GenreSet{"Drama"}, []string{"drama"}, GenreSet{"Drama"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.current.Remove(tt.remove))
		})
	}
}
