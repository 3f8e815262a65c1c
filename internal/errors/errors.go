package errors

import (
	"errors"
)

// Error texts double as client-facing messages, so the security-sensitive ones
// are deliberately non-distinguishing (same message for unknown email and wrong
// password, same message for every reset-token failure).
var (
	ErrInvalidCredentials   = errors.New("Invalid email or password")
	ErrEmailAlreadyInUse    = errors.New("Email already registered")
	ErrNoSessionToken       = errors.New("No session token")
	ErrSessionInvalid       = errors.New("Invalid or expired session")
	ErrResetTokenInvalid    = errors.New("Invalid or expired reset token")
	ErrWrongCurrentPassword = errors.New("Current password is incorrect")
	ErrUserNotFound         = errors.New("User not found")
	ErrDogNotFound          = errors.New("Dog not found")
	ErrAddressNotFound      = errors.New("Address not found")
	ErrInvalidFileType      = errors.New("Invalid file type. Please upload a JPEG, PNG, or WebP image")
	ErrPhotoTooLarge        = errors.New("File too large. Maximum size is 5MB")
)
