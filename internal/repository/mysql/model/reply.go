package model

import (
	"time"

	"github.com/danupratama/forum-api/domain"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Content   string    `gorm:"type:text;not null"`
	CommentID string    `gorm:"column:comment_id;size:64;not null;index"`
	Owner     string    `gorm:"column:owner;size:64;not null"`
	IsDeleted bool      `gorm:"column:is_deleted;default:false"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReplyFromDomain(r *domain.Reply) *Reply {
	return &Reply{
		ID:        r.ID,
		Content:   r.Content,
		CommentID: r.CommentID,
		Owner:     r.Owner,
		IsDeleted: r.IsDeleted,
		CreatedAt: r.Date,
	}
}
