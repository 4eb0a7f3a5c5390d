package hasher

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"

	"github.com/talx-hub/likeboard/internal/serviceerrs"
	"github.com/talx-hub/likeboard/internal/utils/semaphore"
)

const (
	MinCost     = 8
	DefaultCost = bcrypt.DefaultCost
)

// Bcrypt hashes passwords with bcrypt. Hashing is CPU bound, so the number
// of hashes computed at the same time is limited by a semaphore.
type Bcrypt struct {
	sema *semaphore.Semaphore
	cost int
}

func NewBcrypt(cost int, workers int) (*Bcrypt, error) {
	if cost < MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d is out of range [%d, %d]",
			cost, MinCost, bcrypt.MaxCost)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Bcrypt{
		sema: semaphore.New(uint64(workers)),
		cost: cost,
	}, nil
}

func (b *Bcrypt) Hash(ctx context.Context, password string) (string, error) {
	if err := b.sema.Acquire(ctx); err != nil {
		return "", err //nolint: wrapcheck // already wrapped by semaphore
	}
	defer b.sema.Release()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare returns serviceerrs.ErrPasswordMismatch when password does not match hash.
func (b *Bcrypt) Compare(ctx context.Context, hash, password string) error {
	if err := b.sema.Acquire(ctx); err != nil {
		return err //nolint: wrapcheck // already wrapped by semaphore
	}
	defer b.sema.Release()

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return serviceerrs.ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("failed to compare password hash: %w", err)
	}
	return nil
}
