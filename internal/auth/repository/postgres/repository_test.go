package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/domain"
	repo "github.com/farberstyle-netizen/holistic-dog-site/internal/auth/repository/postgres"
)

var userColumns = []string{
	"id", "email", "password_hash", "first_name", "last_name", "is_admin",
	"address", "city", "state", "zip",
	"billing_name", "billing_address", "billing_city", "billing_state", "billing_zip",
	"photo_filename", "created_at", "updated_at",
}

func userRow(id, email string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(userColumns).
		AddRow(id, email, "pbkdf2$100000$aabb$ccdd", "Test", nil, false,
			nil, nil, nil, nil,
			nil, nil, nil, nil, nil,
			nil, now, now)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("test@example.com").
			WillReturnRows(userRow("user-123", "test@example.com"))

		user, err := r.GetByEmail(ctx, "test@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-123", user.ID)
		assert.Equal(t, "test@example.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("test@example.com").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, "test@example.com")
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	now := time.Now()

	user := &domain.User{
		ID:           "user-123",
		Email:        "test@example.com",
		PasswordHash: "pbkdf2$100000$aabb$ccdd",
		FirstName:    "Test",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePasswordHash(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)

	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("new-hash", "user-123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, r.UpdatePasswordHash(context.Background(), "user-123", "new-hash"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Addresses(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("create returns id", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO saved_addresses").
			WithArgs("user-123", "Home", "Test Owner", "1 Main St", "Springfield", "IL", "62704").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

		id, err := r.CreateAddress(ctx, &domain.SavedAddress{
			UserID: "user-123", Label: "Home", Name: "Test Owner",
			Address: "1 Main St", City: "Springfield", State: "IL", Zip: "62704",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("update reports whether a row matched", func(t *testing.T) {
		mock.ExpectExec("UPDATE saved_addresses").
			WithArgs("Home", "Test Owner", "1 Main St", "Springfield", "IL", "62704", int64(7), "user-123").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := r.UpdateAddress(ctx, "user-123", &domain.SavedAddress{
			ID: 7, Label: "Home", Name: "Test Owner",
			Address: "1 Main St", City: "Springfield", State: "IL", Zip: "62704",
		})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete scoped to owner", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM saved_addresses").
			WithArgs(int64(7), "user-123").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		ok, err := r.DeleteAddress(ctx, "user-123", 7)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetWithUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewSessionRepository(mock)
	ctx := context.Background()

	columns := []string{"token", "expires_at", "id", "email", "first_name", "is_admin", "photo_filename"}

	t.Run("live session", func(t *testing.T) {
		expiresAt := time.Now().Add(time.Hour)

		mock.ExpectQuery("SELECT s.token, s.expires_at").
			WithArgs("session-token").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("session-token", expiresAt, "user-123", "test@example.com", "Test", false, nil))

		us, err := r.GetWithUser(ctx, "session-token")
		require.NoError(t, err)
		require.NotNil(t, us)
		assert.Equal(t, "user-123", us.UserID)
		assert.False(t, us.IsAdmin)
	})

	t.Run("unknown or expired token", func(t *testing.T) {
		mock.ExpectQuery("SELECT s.token, s.expires_at").
			WithArgs("stale-token").
			WillReturnError(pgx.ErrNoRows)

		us, err := r.GetWithUser(ctx, "stale-token")
		require.NoError(t, err)
		assert.Nil(t, us)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_CreateAndDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewSessionRepository(mock)
	ctx := context.Background()
	now := time.Now()

	s := &domain.Session{
		Token:     "session-token",
		UserID:    "user-123",
		ExpiresAt: now.Add(30 * 24 * time.Hour),
		CreatedAt: now,
	}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(s.Token, s.UserID, s.ExpiresAt, s.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, s))

	mock.ExpectExec("DELETE FROM sessions WHERE token").
		WithArgs("session-token").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(ctx, "session-token"))

	mock.ExpectExec("DELETE FROM sessions WHERE user_id").
		WithArgs("user-123").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	require.NoError(t, r.DeleteAllForUser(ctx, "user-123"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetTokenRepository_GetValid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewResetTokenRepository(mock)
	ctx := context.Background()

	columns := []string{"token", "user_id", "expires_at", "used_at", "created_at"}

	t.Run("usable token", func(t *testing.T) {
		now := time.Now()

		mock.ExpectQuery("SELECT token, user_id").
			WithArgs("reset-token").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("reset-token", "user-123", now.Add(time.Hour), nil, now))

		tok, err := r.GetValid(ctx, "reset-token")
		require.NoError(t, err)
		require.NotNil(t, tok)
		assert.Equal(t, "user-123", tok.UserID)
		assert.Nil(t, tok.UsedAt)
	})

	t.Run("expired or used token", func(t *testing.T) {
		mock.ExpectQuery("SELECT token, user_id").
			WithArgs("spent-token").
			WillReturnError(pgx.ErrNoRows)

		tok, err := r.GetValid(ctx, "spent-token")
		require.NoError(t, err)
		assert.Nil(t, tok)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetTokenRepository_Consume(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewResetTokenRepository(mock)
	ctx := context.Background()

	t.Run("first spend wins", func(t *testing.T) {
		mock.ExpectExec("UPDATE password_reset_tokens").
			WithArgs("reset-token").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		spent, err := r.Consume(ctx, "reset-token")
		require.NoError(t, err)
		assert.True(t, spent)
	})

	t.Run("second spend loses", func(t *testing.T) {
		mock.ExpectExec("UPDATE password_reset_tokens").
			WithArgs("reset-token").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		spent, err := r.Consume(ctx, "reset-token")
		require.NoError(t, err)
		assert.False(t, spent)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
