package thread_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/danupratama/forum-api/domain"
	"github.com/danupratama/forum-api/domain/mocks"
	"github.com/danupratama/forum-api/internal/repository"
	"github.com/danupratama/forum-api/internal/usecase/thread"
)

func newFixtures() (*mocks.ThreadRepository, *mocks.CommentRepository, *mocks.ReplyRepository, *mocks.CommentLikeRepository) {
	return new(mocks.ThreadRepository), new(mocks.CommentRepository), new(mocks.ReplyRepository), new(mocks.CommentLikeRepository)
}

func TestGetThreadDetail(t *testing.T) {
	threadRepo, commentRepo, replyRepo, likeRepo := newFixtures()

	t1 := time.Date(2025, 5, 18, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	threadRepo.On("GetByID", mock.Anything, "thread-123").Return(domain.Thread{
		ID:        "thread-123",
		Title:     "sebuah thread",
		Body:      "sebuah body thread",
		Username:  "dicoding",
		CreatedAt: t1,
	}, nil)
	commentRepo.On("GetByThreadID", mock.Anything, "thread-123").Return([]domain.RawComment{
		{ID: "comment-123", Content: "sebuah comment", ThreadID: "thread-123", Owner: "user-123", Date: t1, Username: "johndoe"},
		{ID: "comment-456", Content: "komentar rahasia", ThreadID: "thread-123", Owner: "user-456", Date: t2, Username: "dicoding", IsDeleted: true},
	}, nil)
	replyRepo.On("GetByCommentIDs", mock.Anything, []string{"comment-123", "comment-456"}).Return([]domain.RawReply{
		{ID: "reply-123", Content: "sebuah balasan", CommentID: "comment-123", Owner: "user-456", Date: t1, Username: "dicoding"},
		{ID: "reply-456", Content: "balasan rahasia", CommentID: "comment-123", Owner: "user-123", Date: t2, Username: "johndoe", IsDeleted: true},
	}, nil)
	likeRepo.On("CountsByCommentIDs", mock.Anything, []string{"comment-123", "comment-456"}).Return(map[string]int64{
		"comment-123": 2,
	}, nil)

	svc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
	detail, err := svc.GetThreadDetail(context.Background(), "thread-123")

	assert.NoError(t, err)
	assert.Equal(t, "thread-123", detail.ID)
	assert.Equal(t, "sebuah thread", detail.Title)
	assert.Len(t, detail.Comments, 2)

	first := detail.Comments[0]
	assert.Equal(t, "comment-123", first.ID)
	assert.Equal(t, "sebuah comment", first.Content)
	assert.Equal(t, int64(2), first.LikeCount)
	assert.Len(t, first.Replies, 2)
	assert.Equal(t, "sebuah balasan", first.Replies[0].Content)
	assert.Equal(t, "**balasan telah dihapus**", first.Replies[1].Content)

	second := detail.Comments[1]
	assert.Equal(t, "comment-456", second.ID)
	assert.Equal(t, "**komentar telah dihapus**", second.Content)
	assert.Zero(t, second.LikeCount)
	assert.NotNil(t, second.Replies)
	assert.Empty(t, second.Replies)

	// one batched call each, never one per comment
	replyRepo.AssertNumberOfCalls(t, "GetByCommentIDs", 1)
	likeRepo.AssertNumberOfCalls(t, "CountsByCommentIDs", 1)
}

func TestGetThreadDetailThreadNotFound(t *testing.T) {
	threadRepo, commentRepo, replyRepo, likeRepo := newFixtures()
	threadRepo.On("GetByID", mock.Anything, "thread-404").Return(domain.Thread{}, domain.ErrNotFound)

	svc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
	_, err := svc.GetThreadDetail(context.Background(), "thread-404")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	commentRepo.AssertNotCalled(t, "GetByThreadID", mock.Anything, mock.Anything)
	replyRepo.AssertNotCalled(t, "GetByCommentIDs", mock.Anything, mock.Anything)
	likeRepo.AssertNotCalled(t, "CountsByCommentIDs", mock.Anything, mock.Anything)
}

func TestGetThreadDetailNoComments(t *testing.T) {
	threadRepo, commentRepo, replyRepo, likeRepo := newFixtures()
	threadRepo.On("GetByID", mock.Anything, "thread-123").Return(domain.Thread{ID: "thread-123"}, nil)
	commentRepo.On("GetByThreadID", mock.Anything, "thread-123").Return([]domain.RawComment{}, nil)
	replyRepo.On("GetByCommentIDs", mock.Anything, []string{}).Return([]domain.RawReply{}, nil)
	likeRepo.On("CountsByCommentIDs", mock.Anything, []string{}).Return(map[string]int64{}, nil)

	svc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
	detail, err := svc.GetThreadDetail(context.Background(), "thread-123")

	assert.NoError(t, err)
	assert.NotNil(t, detail.Comments)
	assert.Empty(t, detail.Comments)

	// the batched calls still run, with the empty id set
	replyRepo.AssertCalled(t, "GetByCommentIDs", mock.Anything, []string{})
	likeRepo.AssertCalled(t, "CountsByCommentIDs", mock.Anything, []string{})
}

func TestGetThreadDetailKeepsCommentOrder(t *testing.T) {
	threadRepo, commentRepo, replyRepo, likeRepo := newFixtures()

	t1 := time.Date(2025, 5, 18, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	threadRepo.On("GetByID", mock.Anything, "thread-123").Return(domain.Thread{ID: "thread-123"}, nil)
	commentRepo.On("GetByThreadID", mock.Anything, "thread-123").Return([]domain.RawComment{
		{ID: "comment-a", Content: "pertama", ThreadID: "thread-123", Owner: "user-123", Date: t1},
		{ID: "comment-b", Content: "kedua", ThreadID: "thread-123", Owner: "user-123", Date: t2},
	}, nil)
	replyRepo.On("GetByCommentIDs", mock.Anything, mock.Anything).Return([]domain.RawReply{}, nil)
	likeRepo.On("CountsByCommentIDs", mock.Anything, mock.Anything).Return(map[string]int64{}, nil)

	svc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
	detail, err := svc.GetThreadDetail(context.Background(), "thread-123")

	assert.NoError(t, err)
	assert.Equal(t, "comment-a", detail.Comments[0].ID)
	assert.Equal(t, "comment-b", detail.Comments[1].ID)
}

func TestGetThreadDetailPropagatesBatchErrors(t *testing.T) {
	someErr := errors.New("storage is down")

	t.Run("reply fetch fails", func(t *testing.T) {
		threadRepo, commentRepo, replyRepo, likeRepo := newFixtures()
		threadRepo.On("GetByID", mock.Anything, "thread-123").Return(domain.Thread{ID: "thread-123"}, nil)
		commentRepo.On("GetByThreadID", mock.Anything, "thread-123").Return([]domain.RawComment{
			{ID: "comment-123", Content: "sebuah comment", ThreadID: "thread-123", Owner: "user-123"},
		}, nil)
		replyRepo.On("GetByCommentIDs", mock.Anything, mock.Anything).Return(nil, someErr)
		likeRepo.On("CountsByCommentIDs", mock.Anything, mock.Anything).Return(map[string]int64{}, nil).Maybe()

		svc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
		_, err := svc.GetThreadDetail(context.Background(), "thread-123")
		assert.ErrorIs(t, err, someErr)
	})

	t.Run("like count fetch fails", func(t *testing.T) {
		threadRepo, commentRepo, replyRepo, likeRepo := newFixtures()
		threadRepo.On("GetByID", mock.Anything, "thread-123").Return(domain.Thread{ID: "thread-123"}, nil)
		commentRepo.On("GetByThreadID", mock.Anything, "thread-123").Return([]domain.RawComment{
			{ID: "comment-123", Content: "sebuah comment", ThreadID: "thread-123", Owner: "user-123"},
		}, nil)
		replyRepo.On("GetByCommentIDs", mock.Anything, mock.Anything).Return([]domain.RawReply{}, nil).Maybe()
		likeRepo.On("CountsByCommentIDs", mock.Anything, mock.Anything).Return(nil, someErr)

		svc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
		_, err := svc.GetThreadDetail(context.Background(), "thread-123")
		assert.ErrorIs(t, err, someErr)
	})
}

func TestStoreThread(t *testing.T) {
	threadRepo, commentRepo, replyRepo, likeRepo := newFixtures()
	threadRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Thread")).Return(nil)

	svc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
	res, err := svc.Store(context.Background(), domain.NewThread{
		Title: "sebuah thread",
		Body:  "sebuah body thread",
		Owner: "user-123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "sebuah thread", res.Title)
	assert.False(t, res.CreatedAt.IsZero())
}

func TestStoreThreadInvalidPayload(t *testing.T) {
	threadRepo, commentRepo, replyRepo, likeRepo := newFixtures()
	svc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)

	_, err := svc.Store(context.Background(), domain.NewThread{Body: "sebuah body thread", Owner: "user-123"})
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = svc.Store(context.Background(), domain.NewThread{Title: 123, Body: "sebuah body thread", Owner: "user-123"})
	assert.ErrorIs(t, err, domain.ErrInvalidType)

	threadRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestFetchThreads(t *testing.T) {
	threadRepo, commentRepo, replyRepo, likeRepo := newFixtures()

	last := time.Date(2025, 5, 18, 10, 0, 0, 0, time.UTC)
	threadRepo.On("Fetch", mock.Anything, "", int64(10)).Return([]domain.Thread{
		{ID: "thread-123", CreatedAt: last.Add(time.Hour)},
		{ID: "thread-456", CreatedAt: last},
	}, nil)

	svc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
	res, nextCursor, err := svc.Fetch(context.Background(), "", 10)

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, repository.EncodeCursor(last), nextCursor)
}

func TestFetchThreadsEmpty(t *testing.T) {
	threadRepo, commentRepo, replyRepo, likeRepo := newFixtures()
	threadRepo.On("Fetch", mock.Anything, "", int64(10)).Return([]domain.Thread{}, nil)

	svc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
	res, nextCursor, err := svc.Fetch(context.Background(), "", 10)

	assert.NoError(t, err)
	assert.Empty(t, res)
	assert.Empty(t, nextCursor)
}
