package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/danupratama/forum-api/domain"
)

// CommentRepository is a mock type for domain.CommentRepository
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentRepository) GetByThreadID(ctx context.Context, threadID string) ([]domain.RawComment, error) {
	args := m.Called(ctx, threadID)
	var res []domain.RawComment
	if v := args.Get(0); v != nil {
		res = v.([]domain.RawComment)
	}
	return res, args.Error(1)
}

func (m *CommentRepository) VerifyAvailable(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) VerifyOwner(ctx context.Context, id, owner string) error {
	args := m.Called(ctx, id, owner)
	return args.Error(0)
}

func (m *CommentRepository) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ domain.CommentRepository = (*CommentRepository)(nil)
