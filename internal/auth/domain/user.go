package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     *string
	IsAdmin      bool

	Address *string
	City    *string
	State   *string
	Zip     *string

	BillingName    *string
	BillingAddress *string
	BillingCity    *string
	BillingState   *string
	BillingZip     *string

	PhotoFilename *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Session is an opaque bearer token row. The token itself is the lookup key;
// a session is live while now < ExpiresAt and the row has not been deleted.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// UserSession is the joined session+user projection handed to handlers after
// a successful validation.
type UserSession struct {
	Token     string
	ExpiresAt time.Time

	UserID        string
	Email         string
	FirstName     string
	IsAdmin       bool
	PhotoFilename *string
}

// ResetToken is single-use: usable iff unexpired and UsedAt is unset.
type ResetToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

type SavedAddress struct {
	ID        int64
	UserID    string
	Label     string
	Name      string
	Address   string
	City      string
	State     string
	Zip       string
	CreatedAt time.Time
}
