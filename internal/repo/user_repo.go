package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/talx-hub/likeboard/internal/model/user"
	"github.com/talx-hub/likeboard/internal/repo/internal/db"
	"github.com/talx-hub/likeboard/internal/serviceerrs"
)

type UserRepository struct {
	DB
}

func NewUserRepository(pool connectionPool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

// Create stores u and sets its generated ID.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	createLogic := func() (int64, error) {
		queries := db.New(r.pool)
		id, err := queries.CreateUser(ctx, db.CreateUserParams{
			Username:     u.Username,
			PasswordHash: u.PasswordHash,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to insert user: %w", classify(err))
		}
		return id, nil
	}

	id, err := WithInsertRetry[int64](createLogic, 0)
	if err != nil {
		return err //nolint: wrapcheck // error from wrapped function
	}
	u.ID = id
	return nil
}

func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	existsLogic := func() (bool, error) {
		queries := db.New(r.pool)
		exists, err := queries.UserExists(ctx, username)
		if err != nil {
			return false, fmt.Errorf("failed to check if username exists in DB: %w", err)
		}
		return exists, nil
	}

	return WithRetry[bool](existsLogic, 0) //nolint: wrapcheck // error from wrapped function
}

// nolint: dupl // ide bug, methods are different
func (r *UserRepository) FindByUsername(ctx context.Context, username string,
) (user.User, error) {
	findByUsernameLogic := func() (user.User, error) {
		queries := db.New(r.pool)
		u, err := findWrapper(ctx, queries.FindUserByUsername, username)
		return toModel(u), err
	}

	u, err := WithRetry[user.User](findByUsernameLogic, 0)
	if err != nil {
		return user.User{}, err //nolint: wrapcheck // error from wrapped function
	}
	return u, nil
}

// nolint: dupl // ide bug, methods are different
func (r *UserRepository) FindByID(ctx context.Context, id int64,
) (user.User, error) {
	findByIDLogic := func() (user.User, error) {
		queries := db.New(r.pool)
		u, err := findWrapper(ctx, queries.FindUserByID, id)
		return toModel(u), err
	}

	u, err := WithRetry[user.User](findByIDLogic, 0)
	if err != nil {
		return user.User{}, err //nolint: wrapcheck // error from wrapped function
	}
	return u, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	updateLogic := func() (struct{}, error) {
		queries := db.New(r.pool)
		affected, err := queries.UpdateUserPassword(ctx, db.UpdateUserPasswordParams{
			ID:           id,
			PasswordHash: passwordHash,
		})
		if err != nil {
			return struct{}{}, fmt.Errorf("failed to update password of user %d: %w", id, classify(err))
		}
		if affected == 0 {
			return struct{}{}, fmt.Errorf("failed to update password of user %d: %w",
				id, serviceerrs.ErrNotFound)
		}
		return struct{}{}, nil
	}

	_, err := WithRetry[struct{}](updateLogic, 0)
	return err //nolint: wrapcheck // error from wrapped function
}

// DeleteAll removes every like and every user. It is a maintenance
// operation for test environments.
func (r *UserRepository) DeleteAll(ctx context.Context) error {
	deleteLogic := func(ctx context.Context, tx connectionPool) (any, error) {
		queries := db.New(tx)
		if err := queries.DeleteAllLikes(ctx); err != nil {
			return struct{}{}, fmt.Errorf("failed to delete likes: %w", err)
		}
		if err := queries.DeleteAllUsers(ctx); err != nil {
			return struct{}{}, fmt.Errorf("failed to delete users: %w", err)
		}
		return struct{}{}, nil
	}

	deleteWithTX := func() (struct{}, error) {
		return WithTX[struct{}](ctx, r.pool, r.log, deleteLogic)
	}

	_, err := WithRetry[struct{}](deleteWithTX, 0)
	return err //nolint: wrapcheck // error from wrapped function
}

func findWrapper[K int64 | string](ctx context.Context,
	fn func(context.Context, K) (db.User, error),
	key K,
) (db.User, error) {
	u, err := fn(ctx, key)
	if err != nil {
		return db.User{},
			fmt.Errorf("failed to find user by %v in DB: %w", key, classify(err))
	}

	return u, nil
}

func toModel(u db.User) user.User {
	return user.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
	}
}
