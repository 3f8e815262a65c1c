package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/farberstyle-netizen/holistic-dog-site/pkg/constant"
)

// Stored credential format: pbkdf2$<iterations>$<salt hex>$<derived key hex>.
// Bare 64-char hex values are legacy unsalted SHA-256 digests kept readable so
// pre-migration accounts can still log in; new writes always produce the
// salted format.

const credentialAlgo = "pbkdf2"

// HashPassword derives a storable credential from a plaintext password.
func HashPassword(password string) (string, error) {
	salt := make([]byte, constant.PBKDF2SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, constant.PBKDF2Iterations, constant.PBKDF2KeyBytes, sha256.New)

	return fmt.Sprintf("%s$%d$%s$%s",
		credentialAlgo,
		constant.PBKDF2Iterations,
		hex.EncodeToString(salt),
		hex.EncodeToString(key),
	), nil
}

// VerifyPassword checks a plaintext password against a stored credential.
// Malformed credentials verify as false rather than erroring; comparisons are
// constant-time in the secret-dependent content.
func VerifyPassword(password, stored string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 4 || parts[0] != credentialAlgo {
		return verifyLegacy(password, stored)
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false
	}

	salt, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}

	storedKey, err := hex.DecodeString(parts[3])
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, len(storedKey), sha256.New)

	return subtle.ConstantTimeCompare(key, storedKey) == 1
}

// IsLegacyCredential reports whether a stored credential is an unsalted
// SHA-256 digest that should be rehashed on the next successful login.
func IsLegacyCredential(stored string) bool {
	return !strings.Contains(stored, "$")
}

func verifyLegacy(password, stored string) bool {
	digest, err := hex.DecodeString(stored)
	if err != nil || len(digest) != sha256.Size {
		return false
	}

	sum := sha256.Sum256([]byte(password))

	return subtle.ConstantTimeCompare(sum[:], digest) == 1
}
