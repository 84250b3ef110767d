package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/danupratama/forum-api/domain"
	"github.com/danupratama/forum-api/domain/mocks"
	"github.com/danupratama/forum-api/internal/repository"
)

func TestCountsByCommentIDsEmptyInput(t *testing.T) {
	db := new(mocks.CommentLikeRepository)
	cache := new(mocks.CommentLikeCache)
	refresher := new(mocks.LikeCountRefresher)

	repo := repository.NewCommentLikeRepository(db, cache, refresher)
	res, err := repo.CountsByCommentIDs(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, res)
	// no round trip of any kind for an empty id set
	cache.AssertNotCalled(t, "MGetCounts", mock.Anything, mock.Anything)
	db.AssertNotCalled(t, "CountsByCommentIDs", mock.Anything, mock.Anything)
}

func TestCountsByCommentIDsAllCached(t *testing.T) {
	db := new(mocks.CommentLikeRepository)
	cache := new(mocks.CommentLikeCache)
	refresher := new(mocks.LikeCountRefresher)
	cache.On("MGetCounts", mock.Anything, []string{"comment-123", "comment-456"}).
		Return(map[string]int64{"comment-123": 2, "comment-456": 0}, nil, nil)

	repo := repository.NewCommentLikeRepository(db, cache, refresher)
	res, err := repo.CountsByCommentIDs(context.Background(), []string{"comment-123", "comment-456"})

	assert.NoError(t, err)
	assert.Equal(t, map[string]int64{"comment-123": 2}, res)
	// a cached zero is still a hit, the database stays untouched
	db.AssertNotCalled(t, "CountsByCommentIDs", mock.Anything, mock.Anything)
}

func TestCountsByCommentIDsCacheMissFallsBack(t *testing.T) {
	db := new(mocks.CommentLikeRepository)
	cache := new(mocks.CommentLikeCache)
	refresher := new(mocks.LikeCountRefresher)
	cache.On("MGetCounts", mock.Anything, []string{"comment-123", "comment-456"}).
		Return(map[string]int64{"comment-123": 2}, []string{"comment-456"}, nil)
	db.On("CountsByCommentIDs", mock.Anything, []string{"comment-456"}).
		Return(map[string]int64{"comment-456": 5}, nil)
	cache.On("MSetCounts", mock.Anything, map[string]int64{"comment-456": 5}).Return(nil)

	repo := repository.NewCommentLikeRepository(db, cache, refresher)
	res, err := repo.CountsByCommentIDs(context.Background(), []string{"comment-123", "comment-456"})

	assert.NoError(t, err)
	assert.Equal(t, map[string]int64{"comment-123": 2, "comment-456": 5}, res)
	cache.AssertCalled(t, "MSetCounts", mock.Anything, map[string]int64{"comment-456": 5})
}

func TestCountsByCommentIDsBackfillsZero(t *testing.T) {
	db := new(mocks.CommentLikeRepository)
	cache := new(mocks.CommentLikeCache)
	refresher := new(mocks.LikeCountRefresher)
	cache.On("MGetCounts", mock.Anything, []string{"comment-789"}).
		Return(map[string]int64{}, []string{"comment-789"}, nil)
	db.On("CountsByCommentIDs", mock.Anything, []string{"comment-789"}).
		Return(map[string]int64{}, nil)
	cache.On("MSetCounts", mock.Anything, map[string]int64{"comment-789": 0}).Return(nil)

	repo := repository.NewCommentLikeRepository(db, cache, refresher)
	res, err := repo.CountsByCommentIDs(context.Background(), []string{"comment-789"})

	assert.NoError(t, err)
	assert.Empty(t, res)
	cache.AssertCalled(t, "MSetCounts", mock.Anything, map[string]int64{"comment-789": 0})
}

func TestAddLikeAdjustsCacheAndNotifies(t *testing.T) {
	db := new(mocks.CommentLikeRepository)
	cache := new(mocks.CommentLikeCache)
	refresher := new(mocks.LikeCountRefresher)
	db.On("AddLike", mock.Anything, "comment-123", "user-123").Return(nil)
	cache.On("IncrCount", mock.Anything, "comment-123").Return(nil)
	refresher.On("Send", "comment-123").Return()

	repo := repository.NewCommentLikeRepository(db, cache, refresher)
	err := repo.AddLike(context.Background(), "comment-123", "user-123")

	assert.NoError(t, err)
	refresher.AssertCalled(t, "Send", "comment-123")
}

func TestAddLikeToleratesCacheMiss(t *testing.T) {
	db := new(mocks.CommentLikeRepository)
	cache := new(mocks.CommentLikeCache)
	refresher := new(mocks.LikeCountRefresher)
	db.On("AddLike", mock.Anything, "comment-123", "user-123").Return(nil)
	cache.On("IncrCount", mock.Anything, "comment-123").Return(domain.ErrCacheMiss)
	refresher.On("Send", "comment-123").Return()

	repo := repository.NewCommentLikeRepository(db, cache, refresher)
	err := repo.AddLike(context.Background(), "comment-123", "user-123")

	assert.NoError(t, err)
}

func TestRemoveLikeNotFound(t *testing.T) {
	db := new(mocks.CommentLikeRepository)
	cache := new(mocks.CommentLikeCache)
	refresher := new(mocks.LikeCountRefresher)
	db.On("RemoveLike", mock.Anything, "comment-123", "user-123").Return(domain.ErrNotFound)

	repo := repository.NewCommentLikeRepository(db, cache, refresher)
	err := repo.RemoveLike(context.Background(), "comment-123", "user-123")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	cache.AssertNotCalled(t, "DecrCount", mock.Anything, mock.Anything)
	refresher.AssertNotCalled(t, "Send", mock.Anything)
}
