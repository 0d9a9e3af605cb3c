package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecofuture-uz/content-service/internal/domain"
)

// BlogFilter narrows blog post listings.
type BlogFilter struct {
	Status *domain.BlogPostStatus
	Limit  int
	Offset int
}

// BlogRepository manages persistence for blog posts.
type BlogRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	List(ctx context.Context, filter BlogFilter) ([]domain.BlogPost, error)
}

type blogRepository struct {
	pool *pgxpool.Pool
}

// NewBlogRepository constructs repository.
func NewBlogRepository(pool *pgxpool.Pool) BlogRepository {
	return &blogRepository{pool: pool}
}

const blogColumns = `id, title, slug, excerpt, body, cover_image, author, status, published_at, created_at, updated_at`

func (r *blogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	const query = `
        INSERT INTO blog_posts (title, slug, excerpt, body, cover_image, author, status, published_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Body,
		post.CoverImage,
		post.Author,
		post.Status,
		post.PublishedAt,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
}

func (r *blogRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	const query = `
        UPDATE blog_posts
        SET title=$1, slug=$2, excerpt=$3, body=$4, cover_image=$5, author=$6, status=$7, published_at=$8, updated_at=NOW()
        WHERE id=$9`
	cmd, err := r.pool.Exec(ctx, query,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Body,
		post.CoverImage,
		post.Author,
		post.Status,
		post.PublishedAt,
		post.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE id=$1`
	return scanBlogPost(r.pool.QueryRow(ctx, query, id))
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug=$1`
	return scanBlogPost(r.pool.QueryRow(ctx, query, slug))
}

func (r *blogRepository) List(ctx context.Context, filter BlogFilter) ([]domain.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts`
	args := []any{}
	if filter.Status != nil {
		query += ` WHERE status=$1`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY COALESCE(published_at, created_at) DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + argPos(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + argPos(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.BlogPost
	for rows.Next() {
		var post domain.BlogPost
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Slug,
			&post.Excerpt,
			&post.Body,
			&post.CoverImage,
			&post.Author,
			&post.Status,
			&post.PublishedAt,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, post)
	}
	return result, rows.Err()
}

func scanBlogPost(row pgx.Row) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Body,
		&post.CoverImage,
		&post.Author,
		&post.Status,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &post, nil
}
