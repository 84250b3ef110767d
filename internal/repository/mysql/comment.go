package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danupratama/forum-api/domain"
	"github.com/danupratama/forum-api/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	if comment.ID == "" {
		comment.ID = "comment-" + uuid.NewString()
	}
	return c.DB.WithContext(ctx).Create(model.NewCommentFromDomain(comment)).Error
}

func (c *commentRepository) GetByThreadID(ctx context.Context, threadID string) ([]domain.RawComment, error) {
	var rows []struct {
		model.Comment
		Username string
	}
	err := c.DB.WithContext(ctx).
		Table("comments").
		Select("comments.*, users.username").
		Joins("JOIN users ON comments.owner = users.id").
		Where("comments.thread_id = ?", threadID).
		Order("comments.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.RawComment, len(rows))
	for i := range rows {
		res[i] = domain.RawComment{
			ID:        rows[i].ID,
			Content:   rows[i].Content,
			ThreadID:  rows[i].ThreadID,
			Owner:     rows[i].Owner,
			Date:      rows[i].CreatedAt,
			Username:  rows[i].Username,
			IsDeleted: rows[i].IsDeleted,
		}
	}
	return res, nil
}

func (c *commentRepository) VerifyAvailable(ctx context.Context, id string) error {
	var count int64
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) VerifyOwner(ctx context.Context, id, owner string) error {
	var comment model.Comment
	err := c.DB.WithContext(ctx).Select("owner").Take(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if comment.Owner != owner {
		return domain.ErrForbidden
	}
	return nil
}

func (c *commentRepository) SoftDelete(ctx context.Context, id string) error {
	result := c.DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
