package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

	t.Run("derives slug from title", func(t *testing.T) {
		b := Blog{Title: "What Is Taste?", Content: "..."}
		b.ApplyDefaults(now)

		assert.Equal(t, "what-is-taste", b.Slug)
		assert.Equal(t, CategoryFrontend, b.Category)
		assert.Equal(t, []string{}, b.Tags)
		assert.Equal(t, now, b.PublishedDate)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		published := now.AddDate(0, -1, 0)
		b := Blog{
			Title:         "A Post",
			Slug:          "custom-slug",
			Category:      CategoryDevops,
			Tags:          []string{"go"},
			PublishedDate: published,
		}
		b.ApplyDefaults(now)

		assert.Equal(t, "custom-slug", b.Slug)
		assert.Equal(t, CategoryDevops, b.Category)
		assert.Equal(t, []string{"go"}, b.Tags)
		assert.Equal(t, published, b.PublishedDate)
	})
}
