// Package social manages likes between users and the most-liked ranking.
package social

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/talx-hub/likeboard/internal/model/like"
	"github.com/talx-hub/likeboard/internal/model/user"
	"github.com/talx-hub/likeboard/internal/serviceerrs"
)

// UserFinder returns an error wrapping serviceerrs.ErrNotFound for missing users.
type UserFinder interface {
	FindByID(ctx context.Context, id int64) (user.User, error)
}

// LikeRepository stores directed like edges. Constraint failures on Create
// wrap the matching serviceerrs storage sentinel.
type LikeRepository interface {
	Find(ctx context.Context, likedByUserID, userID int64) (like.Like, error)
	Create(ctx context.Context, likedByUserID, userID int64) (like.Like, error)
	Delete(ctx context.Context, id int64) error
	CountIncoming(ctx context.Context, userID int64) (int64, error)
	ListByLikeCount(ctx context.Context) ([]like.Stat, error)
}

// Service is safe for concurrent use.
type Service struct {
	users UserFinder
	likes LikeRepository
	log   *slog.Logger
}

// New returns a Service backed by the given stores.
func New(users UserFinder, likes LikeRepository, log *slog.Logger) *Service {
	return &Service{
		users: users,
		likes: likes,
		log:   log,
	}
}

// Like records that currentUserID likes userID.
// Guards run in order: self like, missing target, existing like.
func (s *Service) Like(ctx context.Context, userID, currentUserID int64) error {
	if userID == currentUserID {
		return serviceerrs.ErrSelfLike
	}
	if err := s.ensureLikedUser(ctx, userID); err != nil {
		return err
	}

	_, err := s.likes.Find(ctx, currentUserID, userID)
	switch {
	case err == nil:
		return serviceerrs.ErrAlreadyLiked
	case !errors.Is(err, serviceerrs.ErrNotFound):
		return fmt.Errorf("failed to find like: %w", err)
	}

	l, err := s.likes.Create(ctx, currentUserID, userID)
	if err != nil {
		switch {
		case errors.Is(err, serviceerrs.ErrUniqueViolation):
			return serviceerrs.ErrAlreadyLiked
		case errors.Is(err, serviceerrs.ErrCheckViolation):
			return serviceerrs.ErrSelfLike
		case errors.Is(err, serviceerrs.ErrForeignKeyViolation):
			return serviceerrs.ErrLikedUserNotFound
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	s.log.LogAttrs(ctx, slog.LevelDebug, "like created",
		slog.Int64("like_id", l.ID),
		slog.Int64("liked_by_user_id", currentUserID),
		slog.Int64("user_id", userID))
	return nil
}

// Unlike removes the like currentUserID gave to userID.
func (s *Service) Unlike(ctx context.Context, userID, currentUserID int64) error {
	if err := s.ensureLikedUser(ctx, userID); err != nil {
		return err
	}

	l, err := s.likes.Find(ctx, currentUserID, userID)
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			return serviceerrs.ErrLikeNotFound
		}
		return fmt.Errorf("failed to find like: %w", err)
	}

	if err = s.likes.Delete(ctx, l.ID); err != nil {
		// a concurrent unlike removed the row first
		if errors.Is(err, serviceerrs.ErrNotFound) {
			return serviceerrs.ErrLikeNotFound
		}
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

// GetUsernameAndLikes returns the username and the number of incoming likes.
func (s *Service) GetUsernameAndLikes(
	ctx context.Context, userID int64,
) (like.UserLikes, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			return like.UserLikes{}, serviceerrs.ErrUserNotFound
		}
		return like.UserLikes{}, fmt.Errorf("failed to find user: %w", err)
	}

	count, err := s.likes.CountIncoming(ctx, userID)
	if err != nil {
		return like.UserLikes{}, fmt.Errorf("failed to count likes: %w", err)
	}
	return like.UserLikes{
		Username: u.Username,
		Likes:    count,
	}, nil
}

// MostLiked ranks every user by incoming likes, most liked first;
// ties are broken by user id ascending. Users without likes are included.
func (s *Service) MostLiked(ctx context.Context) ([]like.Stat, error) {
	stats, err := s.likes.ListByLikeCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by likes: %w", err)
	}
	if stats == nil {
		stats = []like.Stat{}
	}
	return stats, nil
}

func (s *Service) ensureLikedUser(ctx context.Context, userID int64) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			return serviceerrs.ErrLikedUserNotFound
		}
		return fmt.Errorf("failed to find liked user: %w", err)
	}
	return nil
}
