package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewObjectName(t *testing.T) {
	name := newObjectName("../posters/evening news.jpg")

	assert.True(t, strings.HasPrefix(name, "content-images/evening news_"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotContains(t, name, "..")

	assert.True(t, strings.HasPrefix(newObjectName(".png"), "content-images/image_"))
	assert.NotEqual(t, newObjectName("a.jpg"), newObjectName("a.jpg"))
}

func TestObjectNameFromURL(t *testing.T) {
	const base = "http://localhost:9000/contents"

	tests := []struct {
		name     string
		imageURL string
		want     string
		ok       bool
	}{
		{"uploaded image", base + "/content-images/news_1a2b3c4d.jpg", "content-images/news_1a2b3c4d.jpg", true},
		{"query string ignored", base + "/content-images/news.jpg?v=2", "content-images/news.jpg", true},
		{"other host", "https://cdn.example.com/contents/content-images/news.jpg", "", false},
		{"outside image prefix", base + "/backups/dump.sql", "", false},
		{"prefix only", base + "/content-images/", "", false},
		{"bucket sibling", base + "-old/content-images/news.jpg", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := objectNameFromURL(tt.imageURL, base)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := objectNameFromURL(base+"/content-images/news.jpg", "")
	assert.False(t, ok)
}
