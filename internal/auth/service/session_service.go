package service

//go:generate mockgen -destination=../../mocks/mock_session_manager.go -package=mocks github.com/farberstyle-netizen/holistic-dog-site/internal/auth/service SessionManager

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	autherror "github.com/farberstyle-netizen/holistic-dog-site/internal/errors"

	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/domain"
	"github.com/farberstyle-netizen/holistic-dog-site/pkg/constant"
)

// SessionManager issues and validates opaque bearer session tokens.
type SessionManager interface {
	Issue(ctx context.Context, userID string) (string, time.Time, error)
	Validate(ctx context.Context, token string) (*domain.UserSession, error)
	Revoke(ctx context.Context, token string) error
	RevokeAll(ctx context.Context, userID string) error
}

type SessionService struct {
	sessions domain.SessionRepository
	ttl      time.Duration
}

func NewSessionService(sessions domain.SessionRepository) *SessionService {
	return &SessionService{
		sessions: sessions,
		ttl:      constant.SessionTTL,
	}
}

// Issue mints a new random token and persists it with a fixed TTL. Existing
// sessions for the user stay valid; concurrent sessions are allowed.
func (s *SessionService) Issue(ctx context.Context, userID string) (string, time.Time, error) {
	token, err := randomToken(constant.SessionTokenBytes)
	if err != nil {
		return "", time.Time{}, err
	}

	now := time.Now()
	session := &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store session: %w", err)
	}

	return token, session.ExpiresAt, nil
}

// Validate resolves a presented token to its user. Expiry is checked lazily at
// lookup time; expired rows are simply not matched, not purged.
func (s *SessionService) Validate(ctx context.Context, token string) (*domain.UserSession, error) {
	if token == "" {
		return nil, autherror.ErrNoSessionToken
	}

	us, err := s.sessions.GetWithUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("session lookup failed: %w", err)
	}
	if us == nil {
		return nil, autherror.ErrSessionInvalid
	}

	return us, nil
}

func (s *SessionService) Revoke(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *SessionService) RevokeAll(ctx context.Context, userID string) error {
	return s.sessions.DeleteAllForUser(ctx, userID)
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
