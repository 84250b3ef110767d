package model

import (
	"time"

	"github.com/danupratama/forum-api/domain"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Content   string    `gorm:"type:text;not null"`
	ThreadID  string    `gorm:"column:thread_id;size:64;not null;index"`
	Owner     string    `gorm:"column:owner;size:64;not null"`
	IsDeleted bool      `gorm:"column:is_deleted;default:false"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		Content:   c.Content,
		ThreadID:  c.ThreadID,
		Owner:     c.Owner,
		IsDeleted: c.IsDeleted,
		CreatedAt: c.Date,
	}
}
