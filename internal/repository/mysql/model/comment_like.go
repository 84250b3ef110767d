package model

import (
	"time"

	"github.com/danupratama/forum-api/domain"
)

// CommentLike carries a composite unique index on (comment_id, owner); the
// toggle race policy relies on the database rejecting duplicate pairs.
type CommentLike struct {
	ID        string    `gorm:"primaryKey;size:64"`
	CommentID string    `gorm:"column:comment_id;size:64;not null;uniqueIndex:idx_comment_owner"`
	Owner     string    `gorm:"column:owner;size:64;not null;uniqueIndex:idx_comment_owner"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

func (m *CommentLike) ToDomain() domain.CommentLike {
	return domain.CommentLike{
		CommentID: m.CommentID,
		Owner:     m.Owner,
		CreatedAt: m.CreatedAt,
	}
}
