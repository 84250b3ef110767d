package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/danupratama/forum-api/domain"
)

// CommentLikeRepository is a mock type for domain.CommentLikeRepository
type CommentLikeRepository struct {
	mock.Mock
}

func (m *CommentLikeRepository) AddLike(ctx context.Context, commentID, owner string) error {
	args := m.Called(ctx, commentID, owner)
	return args.Error(0)
}

func (m *CommentLikeRepository) LikeExists(ctx context.Context, commentID, owner string) (bool, error) {
	args := m.Called(ctx, commentID, owner)
	return args.Bool(0), args.Error(1)
}

func (m *CommentLikeRepository) RemoveLike(ctx context.Context, commentID, owner string) error {
	args := m.Called(ctx, commentID, owner)
	return args.Error(0)
}

func (m *CommentLikeRepository) CountsByCommentIDs(ctx context.Context, commentIDs []string) (map[string]int64, error) {
	args := m.Called(ctx, commentIDs)
	var res map[string]int64
	if v := args.Get(0); v != nil {
		res = v.(map[string]int64)
	}
	return res, args.Error(1)
}

var _ domain.CommentLikeRepository = (*CommentLikeRepository)(nil)
