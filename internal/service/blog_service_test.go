package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecofuture-uz/content-service/internal/domain"
	"github.com/ecofuture-uz/content-service/internal/events"
	"github.com/ecofuture-uz/content-service/internal/repository"
)

type fakeBlogRepo struct {
	posts  map[string]*domain.BlogPost
	nextID int
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: make(map[string]*domain.BlogPost), nextID: 1}
}

func (f *fakeBlogRepo) Create(_ context.Context, post *domain.BlogPost) error {
	post.ID = string(rune('0' + f.nextID))
	f.nextID++
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakeBlogRepo) Update(_ context.Context, post *domain.BlogPost) error {
	if _, ok := f.posts[post.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakeBlogRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeBlogRepo) GetByID(_ context.Context, id string) (*domain.BlogPost, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *post
	return &copied, nil
}

func (f *fakeBlogRepo) GetBySlug(_ context.Context, slug string) (*domain.BlogPost, error) {
	for _, post := range f.posts {
		if post.Slug == slug {
			copied := *post
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeBlogRepo) List(_ context.Context, filter repository.BlogFilter) ([]domain.BlogPost, error) {
	var out []domain.BlogPost
	for _, post := range f.posts {
		if filter.Status != nil && post.Status != *filter.Status {
			continue
		}
		out = append(out, *post)
	}
	return out, nil
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "river-cleanup-2026", Slugify("River Cleanup 2026"))
	assert.Equal(t, "eco-future-what-s-next", Slugify("  Eco/Future: What's Next?  "))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestBlogService_CreateAndPublish(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBlogRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewBlogService(repo, dispatcher)

	post, err := svc.Create(ctx, BlogInput{Title: "Tree Planting Day", Body: "We planted 500 trees.", Author: "Fozila"})
	require.NoError(t, err)
	assert.Equal(t, domain.BlogPostStatusDraft, post.Status)
	assert.Equal(t, "tree-planting-day", post.Slug)
	assert.Nil(t, post.PublishedAt)
	assert.Empty(t, dispatcher.published)

	t.Run("drafts are invisible on the public blog", func(t *testing.T) {
		_, err := svc.GetPublishedBySlug(ctx, post.Slug)
		assert.Error(t, err)
	})

	published, err := svc.Publish(ctx, "admin-1", post.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BlogPostStatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)

	require.Len(t, dispatcher.published, 1)
	event := dispatcher.published[0]
	assert.Equal(t, events.EventPostPublished, event.Type)
	assert.Equal(t, post.ID, event.EntityID)

	t.Run("publishing twice is idempotent", func(t *testing.T) {
		again, err := svc.Publish(ctx, "admin-1", post.ID)
		require.NoError(t, err)
		assert.Equal(t, published.PublishedAt, again.PublishedAt)
		assert.Len(t, dispatcher.published, 1)
	})

	t.Run("published post is readable by slug", func(t *testing.T) {
		got, err := svc.GetPublishedBySlug(ctx, "tree-planting-day")
		require.NoError(t, err)
		assert.Equal(t, "Tree Planting Day", got.Title)
	})
}

func TestBlogService_Update(t *testing.T) {
	ctx := context.Background()
	svc := NewBlogService(newFakeBlogRepo(), nil)

	post, err := svc.Create(ctx, BlogInput{Title: "Old Title", Body: "body"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, post.ID, BlogInput{Title: "New Title", Body: "body", Author: "Sardor"})
	require.NoError(t, err)
	assert.Equal(t, "new-title", updated.Slug)
	assert.Equal(t, "Sardor", updated.Author)

	_, err = svc.Update(ctx, "missing", BlogInput{Title: "x"})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
