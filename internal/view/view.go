// Package view maps stored content documents to the shapes the public pages
// render. Mapping is pure: every optional field gets a defined fallback and
// dates are formatted for display. Nothing here is ever persisted.
package view

import (
	"sort"
	"time"

	blogs "github.com/amriteshrai/portfolio-backend/internal/blogs/domain"
	papers "github.com/amriteshrai/portfolio-backend/internal/papers/domain"
	projects "github.com/amriteshrai/portfolio-backend/internal/projects/domain"
)

// PlaceholderImage is served when a document has no image of its own.
const PlaceholderImage = "/placeholder.png"

// Landing page highlight limits.
const (
	FeaturedBlogLimit    = 2
	FeaturedProjectLimit = 4
	FeaturedPaperLimit   = 2
)

const dateLayout = "January 2, 2006"

// BlogCard is the blog shape the public pages render.
type BlogCard struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Date        string   `json:"date"`
	Slug        string   `json:"slug"`
	Category    string   `json:"category"`
}

// ProjectCard is the project shape the public pages render.
type ProjectCard struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image"`
	Status       string   `json:"status"`
	LiveURL      string   `json:"liveUrl"`
	GithubURL    string   `json:"githubUrl"`
	Date         string   `json:"date"`
}

// PaperCard is the research paper shape the public pages render.
type PaperCard struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Date        string   `json:"date"`
	Slug        string   `json:"slug"`
	Category    string   `json:"category"`
}

func NewBlogCard(b blogs.Blog) BlogCard {
	return BlogCard{
		Title:       b.Title,
		Description: b.Excerpt,
		Image:       fallback(b.Image, PlaceholderImage),
		Tags:        tagsOrEmpty(b.Tags),
		Date:        FormatDate(b.PublishedDate, b.CreatedAt),
		Slug:        b.Slug,
		Category:    fallback(b.Category, "all"),
	}
}

func NewProjectCard(p projects.Project) ProjectCard {
	return ProjectCard{
		Title:        p.Title,
		Description:  p.Description,
		Technologies: tagsOrEmpty(p.TechStack),
		Image:        fallback(p.Thumbnail, PlaceholderImage),
		Status:       fallback(p.Status, projects.StatusBuilding),
		LiveURL:      p.DemoLink,
		GithubURL:    p.GithubLink,
		Date:         FormatDate(p.PublishedDate, p.CreatedAt),
	}
}

func NewPaperCard(p papers.Paper) PaperCard {
	return PaperCard{
		Title:       p.Title,
		Description: p.Description,
		Image:       fallback(p.Image, PlaceholderImage),
		Tags:        tagsOrEmpty(p.Tags),
		Date:        FormatDate(p.PublishedDate, p.CreatedAt),
		Slug:        p.Slug,
		Category:    fallback(p.Category, "all"),
	}
}

// FeaturedBlogs selects the landing-page blog highlights: featured only,
// newest publishedDate first, at most FeaturedBlogLimit.
func FeaturedBlogs(list []blogs.Blog) []BlogCard {
	featured := make([]blogs.Blog, 0, len(list))
	for _, b := range list {
		if b.Featured {
			featured = append(featured, b)
		}
	}
	sort.SliceStable(featured, func(i, j int) bool {
		return featured[i].PublishedDate.After(featured[j].PublishedDate)
	})
	if len(featured) > FeaturedBlogLimit {
		featured = featured[:FeaturedBlogLimit]
	}

	cards := make([]BlogCard, 0, len(featured))
	for _, b := range featured {
		cards = append(cards, NewBlogCard(b))
	}
	return cards
}

// FeaturedProjects selects the landing-page project highlights.
func FeaturedProjects(list []projects.Project) []ProjectCard {
	featured := make([]projects.Project, 0, len(list))
	for _, p := range list {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	sort.SliceStable(featured, func(i, j int) bool {
		return featured[i].PublishedDate.After(featured[j].PublishedDate)
	})
	if len(featured) > FeaturedProjectLimit {
		featured = featured[:FeaturedProjectLimit]
	}

	cards := make([]ProjectCard, 0, len(featured))
	for _, p := range featured {
		cards = append(cards, NewProjectCard(p))
	}
	return cards
}

// FeaturedPapers selects the landing-page research highlights.
func FeaturedPapers(list []papers.Paper) []PaperCard {
	featured := make([]papers.Paper, 0, len(list))
	for _, p := range list {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	sort.SliceStable(featured, func(i, j int) bool {
		return featured[i].PublishedDate.After(featured[j].PublishedDate)
	})
	if len(featured) > FeaturedPaperLimit {
		featured = featured[:FeaturedPaperLimit]
	}

	cards := make([]PaperCard, 0, len(featured))
	for _, p := range featured {
		cards = append(cards, NewPaperCard(p))
	}
	return cards
}

// FormatDate renders a long-form display date from publishedDate, falling
// back to createdAt when publishedDate was never set.
func FormatDate(published, created time.Time) string {
	d := published
	if d.IsZero() {
		d = created
	}
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
