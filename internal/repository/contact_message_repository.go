package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/portfolio-site/internal/domain"
)

// ContactMessageRepository stores submissions received by the contact endpoint.
type ContactMessageRepository interface {
	Create(ctx context.Context, sub *domain.ContactSubmission) error
	GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error)
	List(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, error)
	Count(ctx context.Context) (int64, error)
}

type contactMessageRepository struct {
	pool *pgxpool.Pool
}

// NewContactMessageRepository builds repository.
func NewContactMessageRepository(pool *pgxpool.Pool) ContactMessageRepository {
	return &contactMessageRepository{pool: pool}
}

func (r *contactMessageRepository) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	const query = `
        INSERT INTO contact_messages (id, name, email, subject, message, hashed_ip, user_agent)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query,
		sub.ID,
		sub.Message.Name,
		sub.Message.Email,
		sub.Message.Subject,
		sub.Message.Message,
		sub.HashedIP,
		sub.UserAgent,
	).Scan(&sub.CreatedAt)
}

func (r *contactMessageRepository) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	const query = `
        SELECT id, name, email, subject, message, hashed_ip, user_agent, created_at
        FROM contact_messages WHERE id=$1`
	var sub domain.ContactSubmission
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&sub.ID,
		&sub.Message.Name,
		&sub.Message.Email,
		&sub.Message.Subject,
		&sub.Message.Message,
		&sub.HashedIP,
		&sub.UserAgent,
		&sub.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *contactMessageRepository) List(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, error) {
	const query = `
        SELECT id, name, email, subject, message, hashed_ip, user_agent, created_at
        FROM contact_messages ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ContactSubmission
	for rows.Next() {
		var sub domain.ContactSubmission
		if err := rows.Scan(
			&sub.ID,
			&sub.Message.Name,
			&sub.Message.Email,
			&sub.Message.Subject,
			&sub.Message.Message,
			&sub.HashedIP,
			&sub.UserAgent,
			&sub.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, sub)
	}
	return result, rows.Err()
}

func (r *contactMessageRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n)
	return n, err
}
