package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
)

// PasswordHasher turns plaintext passwords into stored hashes and checks
// candidates against them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenCodec mints and verifies signed session tokens.
type TokenCodec interface {
	Encode(subject, access string) (string, error)
	Decode(token string) (jwtx.Decoded, error)
}

type UserService struct {
	Store  store.Store
	Hasher PasswordHasher
	Tokens TokenCodec
}

type credentials struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with no sessions.
func (s *UserService) Register(ctx context.Context, email, password string) (domain.User, error) {
	u, err := s.newUser(email, password)
	if err != nil {
		return domain.User{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return createUser(ctx, tx, u)
	})
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered", slog.String("user_id", u.ID))
	return u, nil
}

// SignUp registers an account and opens its first session atomically.
func (s *UserService) SignUp(ctx context.Context, email, password string) (domain.User, string, error) {
	u, err := s.newUser(email, password)
	if err != nil {
		return domain.User{}, "", err
	}

	var token string
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := createUser(ctx, tx, u); err != nil {
			return err
		}
		token, err = s.issueToken(ctx, tx, &u)
		return err
	})
	if err != nil {
		return domain.User{}, "", err
	}

	slogx.FromContext(ctx).Info("user registered", slog.String("user_id", u.ID))
	return u, token, nil
}

// newUser validates the credentials and hashes the password. Hashing happens
// outside any transaction.
func (s *UserService) newUser(email, password string) (domain.User, error) {
	c := credentials{Email: normalizeEmail(email), Password: password}
	if err := validate(c); err != nil {
		return domain.User{}, err
	}

	hash, err := s.Hasher.Hash(c.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	return domain.User{
		ID:           idx.New().String(),
		Email:        c.Email,
		PasswordHash: hash,
	}, nil
}

func createUser(ctx context.Context, tx store.Tx, u domain.User) error {
	// The pre-check gives a clean error in the common case; the unique
	// index still catches concurrent registrations.
	_, err := tx.Users().GetUserByEmail(ctx, u.Email)
	switch {
	case err == nil:
		return ErrDuplicateEmail
	case !errors.Is(err, store.ErrNotFound):
		return err
	}

	if err := tx.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GenerateAuthToken mints a session token for u and records it. Earlier
// sessions stay valid.
func (s *UserService) GenerateAuthToken(ctx context.Context, u *domain.User) (string, error) {
	var token string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		token, err = s.issueToken(ctx, tx, u)
		return err
	})
	return token, err
}

func (s *UserService) issueToken(ctx context.Context, tx store.Tx, u *domain.User) (string, error) {
	token, err := s.Tokens.Encode(u.ID, jwtx.AccessAuth)
	if err != nil {
		return "", err
	}

	st := domain.SessionToken{Access: jwtx.AccessAuth, TokenHash: cryptox.FingerprintToken(token)}
	if err := tx.Tokens().AddToken(ctx, u.ID, st); err != nil {
		return "", err
	}
	u.Tokens = append(u.Tokens, st)
	return token, nil
}

// Authenticate checks an email and password pair. Unknown emails and wrong
// passwords produce the same error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if !s.Hasher.Verify(password, u.PasswordHash) {
		slogx.FromContext(ctx).Warn("password mismatch", slog.String("user_id", u.ID))
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and opens a new session. A failed authentication never
// records a token.
func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.GenerateAuthToken(ctx, &u)
	if err != nil {
		return domain.User{}, "", err
	}
	return u, token, nil
}

// ResolveToken maps a presented token to the user holding it. Any failure,
// including a token revoked by logout, is ErrUnauthenticated.
func (s *UserService) ResolveToken(ctx context.Context, token string) (domain.User, error) {
	claims, err := s.Tokens.Decode(token)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if claims.Access != jwtx.AccessAuth {
		return domain.User{}, fmt.Errorf("%w: access %q", ErrUnauthenticated, claims.Access)
	}

	ok, err := s.Store.Tokens().HasToken(ctx, claims.Subject, jwtx.AccessAuth, cryptox.FingerprintToken(token))
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		return domain.User{}, fmt.Errorf("%w: token not on record", ErrUnauthenticated)
	}

	u, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUnauthenticated
		}
		return domain.User{}, err
	}
	return u, nil
}

// RemoveToken ends one session. Removing a token that is not on record
// succeeds.
func (s *UserService) RemoveToken(ctx context.Context, userID, token string) error {
	return s.Store.Tokens().RemoveToken(ctx, userID, cryptox.FingerprintToken(token))
}

// SetPassword replaces a user's password and ends all of their sessions.
func (s *UserService) SetPassword(ctx context.Context, email, password string) (domain.User, error) {
	c := credentials{Email: normalizeEmail(email), Password: password}
	if err := validate(c); err != nil {
		return domain.User{}, err
	}

	hash, err := s.Hasher.Hash(c.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	var u domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err = tx.Users().GetUserByEmail(ctx, c.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Users().UpdatePasswordHash(ctx, u.ID, hash); err != nil {
			return err
		}
		if _, err := tx.Tokens().RemoveAllTokens(ctx, u.ID); err != nil {
			return err
		}
		u.PasswordHash = hash
		u.Tokens = nil
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("password reset", slog.String("user_id", u.ID))
	return u, nil
}
