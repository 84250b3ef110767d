package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danupratama/forum-api/domain"
	"github.com/danupratama/forum-api/internal/repository"
	"github.com/danupratama/forum-api/internal/repository/mysql/model"
)

type threadRepository struct {
	DB *gorm.DB
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

func NewThreadRepository(db *gorm.DB) *threadRepository {
	return &threadRepository{
		DB: db,
	}
}

func (r *threadRepository) GetByID(ctx context.Context, id string) (domain.Thread, error) {
	var row struct {
		model.Thread
		Username string
	}
	err := r.DB.WithContext(ctx).
		Table("threads").
		Select("threads.*, users.username").
		Joins("JOIN users ON threads.owner = users.id").
		Where("threads.id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Thread{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Thread{}, err
	}

	thread := row.Thread.ToDomain()
	thread.Username = row.Username
	return thread, nil
}

func (r *threadRepository) VerifyAvailable(ctx context.Context, id string) error {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Thread{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *threadRepository) Store(ctx context.Context, t *domain.Thread) error {
	if t.ID == "" {
		t.ID = "thread-" + uuid.NewString()
	}
	return r.DB.WithContext(ctx).Create(model.NewThreadFromDomain(t)).Error
}

func (r *threadRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Thread, error) {
	query := r.DB.WithContext(ctx).
		Table("threads").
		Select("threads.*, users.username").
		Joins("JOIN users ON threads.owner = users.id").
		Order("threads.created_at DESC").
		Limit(int(num))

	if cursor != "" {
		decodedCursor, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.ErrInvalidType
		}
		query = query.Where("threads.created_at < ?", decodedCursor)
	}

	var rows []struct {
		model.Thread
		Username string
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	res := make([]domain.Thread, len(rows))
	for i := range rows {
		res[i] = rows[i].Thread.ToDomain()
		res[i].Username = rows[i].Username
	}
	return res, nil
}
