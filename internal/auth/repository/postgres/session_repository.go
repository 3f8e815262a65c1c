package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/domain"
)

type SessionRepository struct {
	db DB
}

func NewSessionRepository(db DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sessions (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`, s.Token, s.UserID, s.ExpiresAt, s.CreatedAt)

	return err
}

// GetWithUser resolves a token to its session and owning user in one
// statement. Expired rows are filtered here rather than deleted.
func (r *SessionRepository) GetWithUser(ctx context.Context, token string) (*domain.UserSession, error) {
	query := `
		SELECT s.token, s.expires_at, u.id, u.email, u.first_name, u.is_admin, u.photo_filename
		FROM sessions s
		JOIN users u ON s.user_id = u.id
		WHERE s.token = $1 AND s.expires_at > now()
	`

	var us domain.UserSession
	err := r.db.QueryRow(ctx, query, token).Scan(
		&us.Token, &us.ExpiresAt,
		&us.UserID, &us.Email, &us.FirstName, &us.IsAdmin, &us.PhotoFilename,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	return &us, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}

func (r *SessionRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}
