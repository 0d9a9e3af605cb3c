package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecofuture-uz/content-service/internal/domain"
	"github.com/ecofuture-uz/content-service/internal/events"
	"github.com/ecofuture-uz/content-service/internal/repository"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// BlogService coordinates blog post workflows.
type BlogService struct {
	posts      repository.BlogRepository
	dispatcher events.Dispatcher
}

// BlogInput describes create/update payloads.
type BlogInput struct {
	Title      string
	Excerpt    string
	Body       string
	CoverImage string
	Author     string
}

// NewBlogService builds the service.
func NewBlogService(posts repository.BlogRepository, dispatcher events.Dispatcher) *BlogService {
	return &BlogService{posts: posts, dispatcher: dispatcher}
}

// ListPublished returns published posts for the public blog.
func (s *BlogService) ListPublished(ctx context.Context, limit, offset int) ([]domain.BlogPost, error) {
	status := domain.BlogPostStatusPublished
	return s.posts.List(ctx, repository.BlogFilter{Status: &status, Limit: limit, Offset: offset})
}

// GetPublishedBySlug returns one published post for the public blog.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post.Status != domain.BlogPostStatusPublished {
		return nil, errors.New("post not published")
	}
	return post, nil
}

// ListAll returns every post for the admin area.
func (s *BlogService) ListAll(ctx context.Context, limit, offset int) ([]domain.BlogPost, error) {
	return s.posts.List(ctx, repository.BlogFilter{Limit: limit, Offset: offset})
}

// Create stores a new draft post.
func (s *BlogService) Create(ctx context.Context, input BlogInput) (*domain.BlogPost, error) {
	post := &domain.BlogPost{
		Title:      input.Title,
		Slug:       Slugify(input.Title),
		Excerpt:    input.Excerpt,
		Body:       input.Body,
		CoverImage: input.CoverImage,
		Author:     input.Author,
		Status:     domain.BlogPostStatusDraft,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update replaces editable fields of a post.
func (s *BlogService) Update(ctx context.Context, id string, input BlogInput) (*domain.BlogPost, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Title = input.Title
	post.Slug = Slugify(input.Title)
	post.Excerpt = input.Excerpt
	post.Body = input.Body
	post.CoverImage = input.CoverImage
	post.Author = input.Author
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Publish marks a post published and stamps the publication time.
func (s *BlogService) Publish(ctx context.Context, adminID, id string) (*domain.BlogPost, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Status == domain.BlogPostStatusPublished {
		return post, nil
	}
	now := time.Now()
	post.Status = domain.BlogPostStatusPublished
	post.PublishedAt = &now
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventPostPublished,
		EntityID: post.ID,
		Actor:    events.Actor{AdminID: adminID},
		Payload:  events.PostPublishedPayload{Title: post.Title, Slug: post.Slug},
	})
	return post, nil
}

// Delete removes a post.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}

// Slugify lowercases a title and collapses runs of non-alphanumerics to
// single hyphens.
func Slugify(title string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

func (s *BlogService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
