package domain

import "time"

// BlogPostStatus enumerates publication states.
type BlogPostStatus string

const (
	BlogPostStatusDraft     BlogPostStatus = "DRAFT"
	BlogPostStatusPublished BlogPostStatus = "PUBLISHED"
)

// BlogPost models an article shown on the public blog.
type BlogPost struct {
	ID          string
	Title       string
	Slug        string
	Excerpt     string
	Body        string
	CoverImage  string
	Author      string
	Status      BlogPostStatus
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
