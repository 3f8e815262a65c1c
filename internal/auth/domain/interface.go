package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/farberstyle-netizen/holistic-dog-site/internal/auth/domain UserRepository,SessionRepository,ResetTokenRepository

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdatePasswordHash(ctx context.Context, userID, hash string) error
	UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) error
	UpdateBilling(ctx context.Context, userID string, in BillingUpdate) error

	ListAddresses(ctx context.Context, userID string) ([]SavedAddress, error)
	CreateAddress(ctx context.Context, addr *SavedAddress) (int64, error)
	UpdateAddress(ctx context.Context, userID string, addr *SavedAddress) (bool, error)
	DeleteAddress(ctx context.Context, userID string, id int64) (bool, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	// GetWithUser returns nil when the token is unknown or past its expiry.
	GetWithUser(ctx context.Context, token string) (*UserSession, error)
	Delete(ctx context.Context, token string) error
	DeleteAllForUser(ctx context.Context, userID string) error
}

type ResetTokenRepository interface {
	Create(ctx context.Context, t *ResetToken) error
	// GetValid returns nil when the token is unknown, expired, or already used.
	GetValid(ctx context.Context, token string) (*ResetToken, error)
	// Consume marks the token used iff it is still unused, reporting whether
	// this call was the one that spent it.
	Consume(ctx context.Context, token string) (bool, error)
}

type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Address   *string
	City      *string
	State     *string
	Zip       *string
}

type BillingUpdate struct {
	BillingName    *string
	BillingAddress *string
	BillingCity    *string
	BillingState   *string
	BillingZip     *string
}
