package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecofuture-uz/content-service/internal/domain"
)

// VolunteerRepository manages persistence for volunteer submissions.
type VolunteerRepository interface {
	Create(ctx context.Context, submission *domain.VolunteerSubmission) error
	UpdateStatus(ctx context.Context, id string, status domain.VolunteerStatus) error
	GetByID(ctx context.Context, id string) (*domain.VolunteerSubmission, error)
	List(ctx context.Context, status *domain.VolunteerStatus, limit, offset int) ([]domain.VolunteerSubmission, error)
}

type volunteerRepository struct {
	pool *pgxpool.Pool
}

// NewVolunteerRepository constructs repository.
func NewVolunteerRepository(pool *pgxpool.Pool) VolunteerRepository {
	return &volunteerRepository{pool: pool}
}

const volunteerColumns = `id, name, email, phone, message, status, created_at, updated_at`

func (r *volunteerRepository) Create(ctx context.Context, submission *domain.VolunteerSubmission) error {
	const query = `
        INSERT INTO volunteer_submissions (name, email, phone, message, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		submission.Name,
		submission.Email,
		submission.Phone,
		submission.Message,
		submission.Status,
	).Scan(&submission.ID, &submission.CreatedAt, &submission.UpdatedAt)
}

func (r *volunteerRepository) UpdateStatus(ctx context.Context, id string, status domain.VolunteerStatus) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE volunteer_submissions SET status=$1, updated_at=NOW() WHERE id=$2`,
		status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *volunteerRepository) GetByID(ctx context.Context, id string) (*domain.VolunteerSubmission, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteer_submissions WHERE id=$1`
	var submission domain.VolunteerSubmission
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&submission.ID,
		&submission.Name,
		&submission.Email,
		&submission.Phone,
		&submission.Message,
		&submission.Status,
		&submission.CreatedAt,
		&submission.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *volunteerRepository) List(ctx context.Context, status *domain.VolunteerStatus, limit, offset int) ([]domain.VolunteerSubmission, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteer_submissions`
	args := []any{}
	if status != nil {
		query += ` WHERE status=$1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		args = append(args, limit)
		query += ` LIMIT $` + argPos(len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += ` OFFSET $` + argPos(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.VolunteerSubmission
	for rows.Next() {
		var submission domain.VolunteerSubmission
		if err := rows.Scan(
			&submission.ID,
			&submission.Name,
			&submission.Email,
			&submission.Phone,
			&submission.Message,
			&submission.Status,
			&submission.CreatedAt,
			&submission.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, submission)
	}
	return result, rows.Err()
}
