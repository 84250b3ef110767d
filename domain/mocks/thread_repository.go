package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/danupratama/forum-api/domain"
)

// ThreadRepository is a mock type for domain.ThreadRepository
type ThreadRepository struct {
	mock.Mock
}

func (m *ThreadRepository) GetByID(ctx context.Context, id string) (domain.Thread, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Thread), args.Error(1)
}

func (m *ThreadRepository) VerifyAvailable(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ThreadRepository) Store(ctx context.Context, t *domain.Thread) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *ThreadRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Thread, error) {
	args := m.Called(ctx, cursor, num)
	var res []domain.Thread
	if v := args.Get(0); v != nil {
		res = v.([]domain.Thread)
	}
	return res, args.Error(1)
}

var _ domain.ThreadRepository = (*ThreadRepository)(nil)
