package dto

import (
	"time"

	"github.com/ecofuture-uz/content-service/internal/domain"
)

// BlogPostRequest payload for create/update.
type BlogPostRequest struct {
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Body       string `json:"body"`
	CoverImage string `json:"cover_image"`
	Author     string `json:"author"`
}

// BlogPostResponse response shape.
type BlogPostResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Slug        string                `json:"slug"`
	Excerpt     string                `json:"excerpt"`
	Body        string                `json:"body,omitempty"`
	CoverImage  string                `json:"cover_image"`
	Author      string                `json:"author"`
	Status      domain.BlogPostStatus `json:"status"`
	PublishedAt *time.Time            `json:"published_at"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// BlogPostFromDomain maps a post, optionally including the full body.
func BlogPostFromDomain(post *domain.BlogPost, includeBody bool) BlogPostResponse {
	resp := BlogPostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Excerpt:     post.Excerpt,
		CoverImage:  post.CoverImage,
		Author:      post.Author,
		Status:      post.Status,
		PublishedAt: post.PublishedAt,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
	if includeBody {
		resp.Body = post.Body
	}
	return resp
}
