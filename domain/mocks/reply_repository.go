package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/danupratama/forum-api/domain"
)

// ReplyRepository is a mock type for domain.ReplyRepository
type ReplyRepository struct {
	mock.Mock
}

func (m *ReplyRepository) Store(ctx context.Context, r *domain.Reply) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ReplyRepository) GetByCommentIDs(ctx context.Context, ids []string) ([]domain.RawReply, error) {
	args := m.Called(ctx, ids)
	var res []domain.RawReply
	if v := args.Get(0); v != nil {
		res = v.([]domain.RawReply)
	}
	return res, args.Error(1)
}

func (m *ReplyRepository) VerifyOwner(ctx context.Context, id, owner string) error {
	args := m.Called(ctx, id, owner)
	return args.Error(0)
}

func (m *ReplyRepository) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ domain.ReplyRepository = (*ReplyRepository)(nil)
