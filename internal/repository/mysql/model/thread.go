package model

import (
	"time"

	"github.com/danupratama/forum-api/domain"
)

type Thread struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	Owner     string    `gorm:"column:owner;size:64;not null;index"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Thread) TableName() string {
	return "threads"
}

func NewThreadFromDomain(t *domain.Thread) *Thread {
	return &Thread{
		ID:        t.ID,
		Title:     t.Title,
		Body:      t.Body,
		Owner:     t.Owner,
		CreatedAt: t.CreatedAt,
	}
}

func (m *Thread) ToDomain() domain.Thread {
	return domain.Thread{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body,
		Owner:     m.Owner,
		CreatedAt: m.CreatedAt,
	}
}
