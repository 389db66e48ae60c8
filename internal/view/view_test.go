package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	blogs "github.com/amriteshrai/portfolio-backend/internal/blogs/domain"
	papers "github.com/amriteshrai/portfolio-backend/internal/papers/domain"
	projects "github.com/amriteshrai/portfolio-backend/internal/projects/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewBlogCard_Fallbacks(t *testing.T) {
	card := NewBlogCard(blogs.Blog{
		Title:         "Post",
		Slug:          "post",
		PublishedDate: date(2025, time.September, 15),
	})

	assert.Equal(t, PlaceholderImage, card.Image)
	assert.Equal(t, []string{}, card.Tags)
	assert.Equal(t, "", card.Description)
	assert.Equal(t, "all", card.Category)
	assert.Equal(t, "September 15, 2025", card.Date)
}

func TestFormatDate_FallsBackToCreatedAt(t *testing.T) {
	created := date(2024, time.January, 2)

	assert.Equal(t, "January 2, 2024", FormatDate(time.Time{}, created))
	assert.Equal(t, "", FormatDate(time.Time{}, time.Time{}))
}

func TestFeaturedBlogs_LimitAndOrder(t *testing.T) {
	list := []blogs.Blog{
		{Title: "old", Slug: "old", Featured: true, PublishedDate: date(2025, time.March, 1)},
		{Title: "newest", Slug: "newest", Featured: true, PublishedDate: date(2025, time.June, 1)},
		{Title: "not featured", Slug: "nf", Featured: false, PublishedDate: date(2025, time.July, 1)},
		{Title: "middle", Slug: "middle", Featured: true, PublishedDate: date(2025, time.May, 1)},
	}

	cards := FeaturedBlogs(list)

	assert.Len(t, cards, 2)
	assert.Equal(t, "newest", cards[0].Title)
	assert.Equal(t, "middle", cards[1].Title)
}

func TestFeaturedBlogs_Empty(t *testing.T) {
	assert.Empty(t, FeaturedBlogs(nil))
	assert.Empty(t, FeaturedBlogs([]blogs.Blog{{Title: "x", Featured: false}}))
}

func TestFeaturedProjects_LimitIsFour(t *testing.T) {
	list := make([]projects.Project, 0, 6)
	for i := 0; i < 6; i++ {
		list = append(list, projects.Project{
			Title:         "p",
			Featured:      true,
			PublishedDate: date(2025, time.January, i+1),
		})
	}

	cards := FeaturedProjects(list)
	assert.Len(t, cards, 4)
	// newest first
	assert.Equal(t, "January 6, 2025", cards[0].Date)
}

func TestNewProjectCard_Fallbacks(t *testing.T) {
	card := NewProjectCard(projects.Project{
		Title:       "Tool",
		Description: "desc",
		CreatedAt:   date(2025, time.February, 10),
	})

	assert.Equal(t, PlaceholderImage, card.Image)
	assert.Equal(t, projects.StatusBuilding, card.Status)
	assert.Equal(t, []string{}, card.Technologies)
	assert.Equal(t, "", card.LiveURL)
	assert.Equal(t, "", card.GithubURL)
	assert.Equal(t, "February 10, 2025", card.Date)
}

func TestFeaturedPapers(t *testing.T) {
	list := []papers.Paper{
		{Title: "a", Featured: true, PublishedDate: date(2025, time.April, 1)},
		{Title: "b", Featured: true, PublishedDate: date(2025, time.April, 2)},
		{Title: "c", Featured: true, PublishedDate: date(2025, time.April, 3)},
	}

	cards := FeaturedPapers(list)
	assert.Len(t, cards, 2)
	assert.Equal(t, "c", cards[0].Title)
	assert.Equal(t, "b", cards[1].Title)
}
