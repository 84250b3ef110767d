package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/danupratama/forum-api/domain"
)

// ThreadUsecase is a mock type for domain.ThreadUsecase
type ThreadUsecase struct {
	mock.Mock
}

func (m *ThreadUsecase) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	args := m.Called(ctx, threadID)
	return args.Get(0).(domain.ThreadDetail), args.Error(1)
}

func (m *ThreadUsecase) Store(ctx context.Context, p domain.NewThread) (domain.Thread, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Thread), args.Error(1)
}

func (m *ThreadUsecase) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Thread, string, error) {
	args := m.Called(ctx, cursor, num)
	ret, _ := args.Get(0).([]domain.Thread)
	return ret, args.String(1), args.Error(2)
}

var _ domain.ThreadUsecase = (*ThreadUsecase)(nil)
