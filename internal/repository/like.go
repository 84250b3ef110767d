package repository

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/danupratama/forum-api/domain"
)

// commentLikeRepository coordinates the database and the count cache. Writes
// go to the database first; the cache is adjusted opportunistically and the
// refresher reconciles it in the background.
type commentLikeRepository struct {
	db        domain.CommentLikeRepository
	cache     domain.CommentLikeCache
	refresher domain.LikeCountRefresher
}

var _ domain.CommentLikeRepository = (*commentLikeRepository)(nil)

// NewCommentLikeRepository creates the coordination layer over the database
// repository and the redis count cache.
func NewCommentLikeRepository(db domain.CommentLikeRepository, cache domain.CommentLikeCache, refresher domain.LikeCountRefresher) *commentLikeRepository {
	return &commentLikeRepository{
		db:        db,
		cache:     cache,
		refresher: refresher,
	}
}

func (r *commentLikeRepository) AddLike(ctx context.Context, commentID, owner string) error {
	if err := r.db.AddLike(ctx, commentID, owner); err != nil {
		return err
	}
	if err := r.cache.IncrCount(ctx, commentID); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to incr cached like count for %s: %v", commentID, err)
	}
	r.refresher.Send(commentID)
	return nil
}

func (r *commentLikeRepository) LikeExists(ctx context.Context, commentID, owner string) (bool, error) {
	return r.db.LikeExists(ctx, commentID, owner)
}

func (r *commentLikeRepository) RemoveLike(ctx context.Context, commentID, owner string) error {
	if err := r.db.RemoveLike(ctx, commentID, owner); err != nil {
		return err
	}
	if err := r.cache.DecrCount(ctx, commentID); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to decr cached like count for %s: %v", commentID, err)
	}
	r.refresher.Send(commentID)
	return nil
}

// CountsByCommentIDs serves counts from the cache and falls back to one
// grouped database query for the ids the cache does not hold. Zero counts are
// cached but omitted from the result; omission means zero to the consumer.
func (r *commentLikeRepository) CountsByCommentIDs(ctx context.Context, commentIDs []string) (map[string]int64, error) {
	if len(commentIDs) == 0 {
		return map[string]int64{}, nil
	}

	found, missing, err := r.cache.MGetCounts(ctx, commentIDs)
	if err != nil {
		logrus.Warnf("like count cache read failed, falling back to db: %v", err)
		found, missing = map[string]int64{}, commentIDs
	}

	res := make(map[string]int64, len(commentIDs))
	for id, count := range found {
		if count > 0 {
			res[id] = count
		}
	}
	if len(missing) == 0 {
		return res, nil
	}

	dbCounts, err := r.db.CountsByCommentIDs(ctx, missing)
	if err != nil {
		return nil, err
	}

	backfill := make(map[string]int64, len(missing))
	for _, id := range missing {
		count := dbCounts[id]
		backfill[id] = count
		if count > 0 {
			res[id] = count
		}
	}
	if err := r.cache.MSetCounts(ctx, backfill); err != nil {
		logrus.Warnf("failed to backfill like count cache: %v", err)
	}

	return res, nil
}
