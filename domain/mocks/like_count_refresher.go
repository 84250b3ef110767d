package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/danupratama/forum-api/domain"
)

// LikeCountRefresher is a mock type for domain.LikeCountRefresher
type LikeCountRefresher struct {
	mock.Mock
}

func (m *LikeCountRefresher) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *LikeCountRefresher) Send(commentID string) {
	m.Called(commentID)
}

var _ domain.LikeCountRefresher = (*LikeCountRefresher)(nil)
