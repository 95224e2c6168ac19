package identity

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/snakeduel/snakeduel-go/internal/model"
)

// CredentialVerifier checks a login password against a stored user.
// The service always records a bcrypt hash at signup, so swapping the
// verifier needs no data migration.
type CredentialVerifier interface {
	Verify(user *model.User, password string) error
}

// AcceptAnyVerifier accepts any non-empty password for a known user. This is
// the demo-auth behavior the service ships with: the password is a
// placeholder and only the email has to match.
type AcceptAnyVerifier struct{}

// Verify accepts any non-empty password
func (AcceptAnyVerifier) Verify(_ *model.User, password string) error {
	if password == "" {
		return ErrInvalidCredentials
	}
	return nil
}

// BcryptVerifier compares the password against the stored bcrypt hash
type BcryptVerifier struct{}

// Verify compares the password against the user's stored hash
func (BcryptVerifier) Verify(user *model.User, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
