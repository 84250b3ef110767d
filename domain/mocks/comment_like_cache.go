package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/danupratama/forum-api/domain"
)

// CommentLikeCache is a mock type for domain.CommentLikeCache
type CommentLikeCache struct {
	mock.Mock
}

func (m *CommentLikeCache) MGetCounts(ctx context.Context, commentIDs []string) (map[string]int64, []string, error) {
	args := m.Called(ctx, commentIDs)
	var found map[string]int64
	if v := args.Get(0); v != nil {
		found = v.(map[string]int64)
	}
	var missing []string
	if v := args.Get(1); v != nil {
		missing = v.([]string)
	}
	return found, missing, args.Error(2)
}

func (m *CommentLikeCache) MSetCounts(ctx context.Context, counts map[string]int64) error {
	args := m.Called(ctx, counts)
	return args.Error(0)
}

func (m *CommentLikeCache) SetCount(ctx context.Context, commentID string, count int64) error {
	args := m.Called(ctx, commentID, count)
	return args.Error(0)
}

func (m *CommentLikeCache) IncrCount(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *CommentLikeCache) DecrCount(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

var _ domain.CommentLikeCache = (*CommentLikeCache)(nil)
