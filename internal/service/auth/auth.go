// Package auth implements registration, login and password management.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/talx-hub/likeboard/internal/model"
	"github.com/talx-hub/likeboard/internal/model/user"
	"github.com/talx-hub/likeboard/internal/serviceerrs"
	jwtauth "github.com/talx-hub/likeboard/internal/utils/auth"
)

// UserRepository is the credential store. Lookups of missing users
// return an error wrapping serviceerrs.ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Exists(ctx context.Context, username string) (bool, error)
	FindByUsername(ctx context.Context, username string) (user.User, error)
	FindByID(ctx context.Context, id int64) (user.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// PasswordHasher reports a mismatch from Compare as serviceerrs.ErrPasswordMismatch.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Compare(ctx context.Context, hash, password string) error
}

// TokenIssuer signs tokens carrying the user id and username.
type TokenIssuer interface {
	Issue(userID int64, username string) (string, error)
}

// placeholderPassword is hashed on first use and compared against when the
// username is unknown, so a failed login costs one bcrypt comparison either way.
const placeholderPassword = "Placeholder0"

// Service is safe for concurrent use.
type Service struct {
	repo   UserRepository
	hasher PasswordHasher
	issuer TokenIssuer
	log    *slog.Logger

	placeholderMu   sync.Mutex
	placeholderHash string
}

// New wires the service to its storage, hasher and token issuer.
func New(
	repo UserRepository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	log *slog.Logger,
) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		issuer: issuer,
		log:    log,
	}
}

// Signup registers a user and returns its public view.
func (s *Service) Signup(
	ctx context.Context, username, password string,
) (user.Public, error) {
	if err := validateCredentials(username, password); err != nil {
		return user.Public{}, err
	}

	exists, err := s.repo.Exists(ctx, username)
	if err != nil {
		return user.Public{}, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return user.Public{}, serviceerrs.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return user.Public{}, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err = s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, serviceerrs.ErrUniqueViolation) {
			return user.Public{}, serviceerrs.ErrUsernameTaken
		}
		return user.Public{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.LogAttrs(ctx, slog.LevelInfo, "user signed up",
		slog.Int64("user_id", u.ID))
	return u.Public(), nil
}

// Login returns a signed token. Unknown usernames and wrong passwords
// are both reported as unauthorized with the same message.
func (s *Service) Login(
	ctx context.Context, username, password string,
) (string, error) {
	if err := validateCredentials(username, password); err != nil {
		return "", err
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, serviceerrs.ErrNotFound) {
			return "", fmt.Errorf("failed to find user: %w", err)
		}
		if hash, ok := s.placeholder(ctx); ok {
			_ = s.hasher.Compare(ctx, hash, password)
		}
		s.log.LogAttrs(ctx, slog.LevelDebug, "login rejected: unknown username")
		return "", serviceerrs.ErrUnknownUsername
	}

	if err = s.comparePassword(ctx, u, password); err != nil {
		if errors.Is(err, serviceerrs.ErrWrongPassword) {
			s.log.LogAttrs(ctx, slog.LevelDebug, "login rejected: wrong password",
				slog.Int64("user_id", u.ID))
		}
		return "", err
	}

	token, err := s.issuer.Issue(u.ID, u.Username)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// UpdatePassword replaces the hash once oldPassword is verified.
func (s *Service) UpdatePassword(
	ctx context.Context, userID int64, oldPassword, newPassword string,
) error {
	if err := validatePasswords(oldPassword, newPassword); err != nil {
		return err
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			return serviceerrs.ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err = s.comparePassword(ctx, u, oldPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(ctx, newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.UpdatePassword(ctx, u.ID, hash); err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			return serviceerrs.ErrUserNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// CurrentUser projects verified token claims onto the public user view.
// Claims are trusted as issued, no store lookup is made.
func (s *Service) CurrentUser(claims jwtauth.Claims) user.Public {
	return user.Public{
		ID:       claims.UserID,
		Username: claims.Username,
	}
}

func (s *Service) comparePassword(
	ctx context.Context, u user.User, password string,
) error {
	err := s.hasher.Compare(ctx, u.PasswordHash, password)
	if err == nil {
		return nil
	}
	if errors.Is(err, serviceerrs.ErrPasswordMismatch) {
		return serviceerrs.ErrWrongPassword
	}
	return fmt.Errorf("failed to compare password: %w", err)
}

// placeholder returns the placeholder hash, computing it on first success.
// A failed attempt is not remembered, the next call hashes again.
func (s *Service) placeholder(ctx context.Context) (string, bool) {
	s.placeholderMu.Lock()
	defer s.placeholderMu.Unlock()

	if s.placeholderHash != "" {
		return s.placeholderHash, true
	}
	hash, err := s.hasher.Hash(context.WithoutCancel(ctx), placeholderPassword)
	if err != nil {
		s.log.LogAttrs(ctx, slog.LevelWarn, "failed to hash placeholder password",
			slog.Any(model.KeyLoggerError, err))
		return "", false
	}
	s.placeholderHash = hash
	return hash, true
}

func validateCredentials(username, password string) error {
	if err := errors.Join(
		user.ValidateUsername(username),
		user.ValidatePassword(password),
	); err != nil {
		return serviceerrs.Validation(err)
	}
	return nil
}

func validatePasswords(passwords ...string) error {
	for _, p := range passwords {
		if err := user.ValidatePassword(p); err != nil {
			return serviceerrs.Validation(err)
		}
	}
	return nil
}
