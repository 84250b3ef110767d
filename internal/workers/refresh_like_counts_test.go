package workers_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/danupratama/forum-api/domain/mocks"
	"github.com/danupratama/forum-api/internal/workers"
)

func TestRefreshLikeCountsWorker(t *testing.T) {
	likeRepo := new(mocks.CommentLikeRepository)
	cache := new(mocks.CommentLikeCache)

	// comment-123 is enqueued twice but must be recounted once; comment-456
	// has no likes left and must still be cached, as zero.
	likeRepo.On("CountsByCommentIDs", mock.Anything, []string{"comment-123", "comment-456"}).
		Return(map[string]int64{"comment-123": 2}, nil).Once()
	cache.On("MSetCounts", mock.Anything, map[string]int64{"comment-123": 2, "comment-456": 0}).
		Return(nil).Once()

	w := workers.NewRefreshLikeCountsWorker(likeRepo, cache)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	w.Send("comment-123")
	w.Send("comment-456")
	w.Send("comment-123")

	time.Sleep(1500 * time.Millisecond)
	cancel()
	<-done

	likeRepo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestRefreshLikeCountsWorkerFlushesOnShutdown(t *testing.T) {
	likeRepo := new(mocks.CommentLikeRepository)
	cache := new(mocks.CommentLikeCache)

	likeRepo.On("CountsByCommentIDs", mock.Anything, []string{"comment-123"}).
		Return(map[string]int64{"comment-123": 1}, nil).Once()
	cache.On("MSetCounts", mock.Anything, map[string]int64{"comment-123": 1}).
		Return(nil).Once()

	w := workers.NewRefreshLikeCountsWorker(likeRepo, cache)
	w.Send("comment-123")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	// Give the worker time to drain the channel into its batch, then stop it
	// before the ticker fires.
	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done

	likeRepo.AssertExpectations(t)
	cache.AssertExpectations(t)
	assert.True(t, likeRepo.AssertNumberOfCalls(t, "CountsByCommentIDs", 1))
}
