package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danupratama/forum-api/domain"
	"github.com/danupratama/forum-api/internal/repository/mysql/model"
)

type commentLikeRepository struct {
	DB *gorm.DB
}

var _ domain.CommentLikeRepository = (*commentLikeRepository)(nil)

func NewCommentLikeRepository(db *gorm.DB) *commentLikeRepository {
	return &commentLikeRepository{
		DB: db,
	}
}

// AddLike inserts the like record. Losing a duplicate-insert race means the
// pair is already liked, which is the target state, so the unique-constraint
// violation maps to success.
func (c *commentLikeRepository) AddLike(ctx context.Context, commentID, owner string) error {
	like := model.CommentLike{
		ID:        "like-" + uuid.NewString(),
		CommentID: commentID,
		Owner:     owner,
		CreatedAt: time.Now(),
	}
	err := c.DB.WithContext(ctx).Create(&like).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (c *commentLikeRepository) LikeExists(ctx context.Context, commentID, owner string) (bool, error) {
	var count int64
	err := c.DB.WithContext(ctx).Model(&model.CommentLike{}).
		Where("comment_id = ? AND owner = ?", commentID, owner).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (c *commentLikeRepository) RemoveLike(ctx context.Context, commentID, owner string) error {
	result := c.DB.WithContext(ctx).
		Where("comment_id = ? AND owner = ?", commentID, owner).
		Delete(&model.CommentLike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentLikeRepository) CountsByCommentIDs(ctx context.Context, commentIDs []string) (map[string]int64, error) {
	if len(commentIDs) == 0 {
		return map[string]int64{}, nil
	}

	var rows []struct {
		CommentID string
		Count     int64
	}
	err := c.DB.WithContext(ctx).Model(&model.CommentLike{}).
		Select("comment_id, COUNT(*) AS count").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make(map[string]int64, len(rows))
	for _, row := range rows {
		res[row.CommentID] = row.Count
	}
	return res, nil
}
