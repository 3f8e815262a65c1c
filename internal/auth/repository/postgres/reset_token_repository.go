package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/domain"
)

type ResetTokenRepository struct {
	db DB
}

func NewResetTokenRepository(db DB) *ResetTokenRepository {
	return &ResetTokenRepository{db: db}
}

func (r *ResetTokenRepository) Create(ctx context.Context, t *domain.ResetToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO password_reset_tokens (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`, t.Token, t.UserID, t.ExpiresAt, t.CreatedAt)

	return err
}

func (r *ResetTokenRepository) GetValid(ctx context.Context, token string) (*domain.ResetToken, error) {
	query := `
		SELECT token, user_id, expires_at, used_at, created_at
		FROM password_reset_tokens
		WHERE token = $1 AND expires_at > now() AND used_at IS NULL
	`

	var t domain.ResetToken
	err := r.db.QueryRow(ctx, query, token).Scan(&t.Token, &t.UserID, &t.ExpiresAt, &t.UsedAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up reset token: %w", err)
	}

	return &t, nil
}

// Consume is a conditional update so that of two racing reset attempts only
// one can spend the token.
func (r *ResetTokenRepository) Consume(ctx context.Context, token string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE password_reset_tokens
		SET used_at = now()
		WHERE token = $1 AND used_at IS NULL
	`, token)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
