package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/talx-hub/likeboard/internal/model/like"
	"github.com/talx-hub/likeboard/internal/repo/internal/db"
	"github.com/talx-hub/likeboard/internal/serviceerrs"
)

type LikeRepository struct {
	DB
}

func NewLikeRepository(pool connectionPool, log *slog.Logger) *LikeRepository {
	return &LikeRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

func (r *LikeRepository) Find(ctx context.Context, likedByUserID, userID int64,
) (like.Like, error) {
	findLogic := func() (like.Like, error) {
		queries := db.New(r.pool)
		l, err := queries.FindLikeEdge(ctx, db.FindLikeEdgeParams{
			LikedByUserID: likedByUserID,
			UserID:        userID,
		})
		if err != nil {
			return like.Like{}, fmt.Errorf("failed to find like %d->%d: %w",
				likedByUserID, userID, classify(err))
		}
		return like.Like{
			ID:            l.ID,
			LikedByUserID: l.LikedByUserID,
			UserID:        l.UserID,
		}, nil
	}

	return WithRetry[like.Like](findLogic, 0) //nolint: wrapcheck // error from wrapped function
}

func (r *LikeRepository) Create(ctx context.Context, likedByUserID, userID int64,
) (like.Like, error) {
	createLogic := func() (like.Like, error) {
		queries := db.New(r.pool)
		id, err := queries.CreateLikeEdge(ctx, db.CreateLikeEdgeParams{
			LikedByUserID: likedByUserID,
			UserID:        userID,
		})
		if err != nil {
			return like.Like{}, fmt.Errorf("failed to insert like %d->%d: %w",
				likedByUserID, userID, classify(err))
		}
		return like.Like{
			ID:            id,
			LikedByUserID: likedByUserID,
			UserID:        userID,
		}, nil
	}

	return WithInsertRetry[like.Like](createLogic, 0) //nolint: wrapcheck // error from wrapped function
}

func (r *LikeRepository) Delete(ctx context.Context, id int64) error {
	deleteLogic := func() (struct{}, error) {
		queries := db.New(r.pool)
		affected, err := queries.DeleteLikeEdge(ctx, id)
		if err != nil {
			return struct{}{}, fmt.Errorf("failed to delete like %d: %w", id, err)
		}
		if affected == 0 {
			return struct{}{}, fmt.Errorf("failed to delete like %d: %w",
				id, serviceerrs.ErrNotFound)
		}
		return struct{}{}, nil
	}

	_, err := WithRetry[struct{}](deleteLogic, 0)
	return err //nolint: wrapcheck // error from wrapped function
}

func (r *LikeRepository) CountIncoming(ctx context.Context, userID int64) (int64, error) {
	countLogic := func() (int64, error) {
		queries := db.New(r.pool)
		count, err := queries.CountIncomingLikes(ctx, userID)
		if err != nil {
			return 0, fmt.Errorf("failed to count likes of user %d: %w", userID, err)
		}
		return count, nil
	}

	return WithRetry[int64](countLogic, 0) //nolint: wrapcheck // error from wrapped function
}

// ListByLikeCount returns every user ordered by incoming likes, most liked
// first. Users with equal counts are ordered by ID.
func (r *LikeRepository) ListByLikeCount(ctx context.Context) ([]like.Stat, error) {
	listLogic := func() ([]like.Stat, error) {
		queries := db.New(r.pool)
		rows, err := queries.ListUsersByLikeCountDesc(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list users by likes: %w", err)
		}

		stats := make([]like.Stat, 0, len(rows))
		for _, row := range rows {
			stats = append(stats, like.Stat{
				Username:      row.Username,
				NumberOfLikes: row.NumberOfLikes,
			})
		}
		return stats, nil
	}

	return WithRetry[[]like.Stat](listLogic, 0) //nolint: wrapcheck // error from wrapped function
}
