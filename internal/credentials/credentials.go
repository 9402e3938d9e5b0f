// Package credentials hashes and verifies doctor passwords. New digests are
// bcrypt; digests imported from the previous deployment were unsalted hex
// SHA-256, so Check falls back to that format when the stored value is not a
// bcrypt hash. Both paths share the same hash/verify contract.
package credentials

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/garnizeh/careboard/internal/models"
	"github.com/garnizeh/careboard/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

// Hash returns a salted digest of the password suitable for storage.
func Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check reports whether password matches the stored digest.
func Check(digest, password string) bool {
	if isLegacyDigest(digest) {
		legacy := legacyHash(password)
		return subtle.ConstantTimeCompare([]byte(digest), []byte(legacy)) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// Verify looks up the doctor by username and checks the password. It returns
// (nil, nil) on any mismatch; callers cannot tell an unknown username from a
// wrong password.
func Verify(ctx context.Context, repo repository.DoctorRepo, username, password string) (*models.Doctor, error) {
	doctor, err := repo.GetDoctorByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !Check(doctor.PasswordHash, password) {
		return nil, nil
	}
	return doctor, nil
}

// legacyHash is the digest scheme of the previous deployment: hex-encoded
// SHA-256 over the UTF-8 bytes of the password, no salt.
func legacyHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func isLegacyDigest(digest string) bool {
	return !strings.HasPrefix(digest, "$2")
}
