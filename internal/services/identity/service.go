// Package identity owns user accounts and the bearer tokens that
// authenticate them.
package identity

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/snakeduel/snakeduel-go/internal/dependencies/random"
	"github.com/snakeduel/snakeduel-go/internal/model"
	"github.com/snakeduel/snakeduel-go/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Service handles accounts and token issuance
type Service struct {
	storage  storage.Store
	random   random.Random
	verifier CredentialVerifier
	logger   *slog.Logger
}

// New creates a new identity Service. A nil verifier gets the accept-any
// demo behavior.
func New(store storage.Store, rnd random.Random, verifier CredentialVerifier, logger *slog.Logger) *Service {
	if verifier == nil {
		verifier = AcceptAnyVerifier{}
	}
	return &Service{
		storage:  store,
		random:   rnd,
		verifier: verifier,
		logger:   logger,
	}
}

// Signup creates a new user account. Email and username must both be unused.
func (s *Service) Signup(ctx context.Context, username, email, password string) (*model.User, error) {
	if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
		return nil, model.ErrEmailExists
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.storage.GetUserByUsername(ctx, username); err == nil {
		return nil, model.ErrUsernameExists
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	// Hash is stored even though the default verifier never reads it
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           model.UserID(s.random.ID("u_")),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		slog.String("user_id", string(user.ID)),
		slog.String("username", user.Username),
	)

	return user, nil
}

// Authenticate checks the email and password and returns the matching user.
// How strictly the password is checked depends on the configured verifier.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.verifier.Verify(user, password); err != nil {
		return nil, err
	}

	return user, nil
}

// IssueToken generates a fresh opaque token for the user and stores the
// mapping. Tokens do not expire; they live until revoked.
func (s *Service) IssueToken(ctx context.Context, userID model.UserID) (model.Token, error) {
	token := model.Token(s.random.ID("t_"))
	if err := s.storage.SaveToken(ctx, token, userID); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve looks up the user behind a bearer token
func (s *Service) Resolve(ctx context.Context, token model.Token) (*model.User, error) {
	userID, err := s.storage.GetTokenUser(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrTokenNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return s.storage.GetUser(ctx, userID)
}

// Revoke removes a token. Revoking an unknown token is a no-op.
func (s *Service) Revoke(ctx context.Context, token model.Token) error {
	return s.storage.DeleteToken(ctx, token)
}
