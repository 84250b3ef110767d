package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danupratama/forum-api/domain"
	"github.com/danupratama/forum-api/internal/repository/mysql/model"
)

type replyRepository struct {
	DB *gorm.DB
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB) *replyRepository {
	return &replyRepository{
		DB: db,
	}
}

func (r *replyRepository) Store(ctx context.Context, reply *domain.Reply) error {
	if reply.ID == "" {
		reply.ID = "reply-" + uuid.NewString()
	}
	return r.DB.WithContext(ctx).Create(model.NewReplyFromDomain(reply)).Error
}

// GetByCommentIDs resolves replies for the whole id set in one query; the
// caller groups them by the record's own CommentID field.
func (r *replyRepository) GetByCommentIDs(ctx context.Context, ids []string) ([]domain.RawReply, error) {
	if len(ids) == 0 {
		return []domain.RawReply{}, nil
	}

	var rows []struct {
		model.Reply
		Username string
	}
	err := r.DB.WithContext(ctx).
		Table("replies").
		Select("replies.*, users.username").
		Joins("JOIN users ON replies.owner = users.id").
		Where("replies.comment_id IN ?", ids).
		Order("replies.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.RawReply, len(rows))
	for i := range rows {
		res[i] = domain.RawReply{
			ID:        rows[i].ID,
			Content:   rows[i].Content,
			CommentID: rows[i].CommentID,
			Owner:     rows[i].Owner,
			Date:      rows[i].CreatedAt,
			Username:  rows[i].Username,
			IsDeleted: rows[i].IsDeleted,
		}
	}
	return res, nil
}

func (r *replyRepository) VerifyOwner(ctx context.Context, id, owner string) error {
	var reply model.Reply
	err := r.DB.WithContext(ctx).Select("owner").Take(&reply, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if reply.Owner != owner {
		return domain.ErrForbidden
	}
	return nil
}

func (r *replyRepository) SoftDelete(ctx context.Context, id string) error {
	result := r.DB.WithContext(ctx).Model(&model.Reply{}).Where("id = ?", id).Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
