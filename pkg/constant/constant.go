package constant

import "time"

const (
	// SessionTokenBytes is the entropy of an opaque session token before hex encoding.
	SessionTokenBytes = 32
	SessionTTL        = 30 * 24 * time.Hour

	ResetTokenBytes = 32
	ResetTokenTTL   = time.Hour

	// PBKDF2 parameters for newly written credentials.
	PBKDF2Iterations = 100000
	PBKDF2SaltBytes  = 16
	PBKDF2KeyBytes   = 32

	MinPasswordLength = 8

	SessionCookieName = "session_token"

	CertificationTTL = 2 * 365 * 24 * time.Hour

	MaxPhotoBytes = 5 * 1024 * 1024
)
