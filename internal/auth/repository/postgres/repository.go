package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/domain"
)

// DB is the slice of pgxpool.Pool the repositories use; pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, is_admin,
		address, city, state, zip,
		billing_name, billing_address, billing_city, billing_state, billing_zip,
		photo_filename, created_at, updated_at`

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`

	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`

	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.IsAdmin,
		&user.Address, &user.City, &user.State, &user.Zip,
		&user.BillingName, &user.BillingAddress, &user.BillingCity, &user.BillingState, &user.BillingZip,
		&user.PhotoFilename, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.CreatedAt, user.UpdatedAt)

	return err
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, userID, hash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2
	`, hash, userID)

	return err
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID string, in domain.ProfileUpdate) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET first_name = COALESCE($1, first_name),
		    last_name  = $2,
		    address    = $3,
		    city       = $4,
		    state      = $5,
		    zip        = $6,
		    updated_at = now()
		WHERE id = $7
	`, in.FirstName, in.LastName, in.Address, in.City, in.State, in.Zip, userID)

	return err
}

func (r *UserRepository) UpdateBilling(ctx context.Context, userID string, in domain.BillingUpdate) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET billing_name    = $1,
		    billing_address = $2,
		    billing_city    = $3,
		    billing_state   = $4,
		    billing_zip     = $5,
		    updated_at      = now()
		WHERE id = $6
	`, in.BillingName, in.BillingAddress, in.BillingCity, in.BillingState, in.BillingZip, userID)

	return err
}

func (r *UserRepository) ListAddresses(ctx context.Context, userID string) ([]domain.SavedAddress, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, label, name, address, city, state, zip, created_at
		FROM saved_addresses
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	defer rows.Close()

	var out []domain.SavedAddress
	for rows.Next() {
		var a domain.SavedAddress
		if err := rows.Scan(&a.ID, &a.UserID, &a.Label, &a.Name, &a.Address, &a.City, &a.State, &a.Zip, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *UserRepository) CreateAddress(ctx context.Context, addr *domain.SavedAddress) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO saved_addresses (user_id, label, name, address, city, state, zip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING id
	`, addr.UserID, addr.Label, addr.Name, addr.Address, addr.City, addr.State, addr.Zip).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save address: %w", err)
	}

	return id, nil
}

func (r *UserRepository) UpdateAddress(ctx context.Context, userID string, addr *domain.SavedAddress) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE saved_addresses
		SET label = $1, name = $2, address = $3, city = $4, state = $5, zip = $6
		WHERE id = $7 AND user_id = $8
	`, addr.Label, addr.Name, addr.Address, addr.City, addr.State, addr.Zip, addr.ID, userID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *UserRepository) DeleteAddress(ctx context.Context, userID string, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM saved_addresses WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
