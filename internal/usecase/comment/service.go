package comment

import (
	"context"
	"time"

	"github.com/danupratama/forum-api/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, threadRepo domain.ThreadRepository) *service {
	return &service{
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
	}
}

func (s *service) Add(ctx context.Context, p domain.NewCommentPayload) (domain.Comment, error) {
	content, threadID, owner, err := p.Validate()
	if err != nil {
		return domain.Comment{}, err
	}

	if err := s.threadRepo.VerifyAvailable(ctx, threadID); err != nil {
		return domain.Comment{}, err
	}

	c := domain.Comment{
		Content:  content,
		ThreadID: threadID,
		Owner:    owner,
		Date:     time.Now(),
	}
	if err := s.commentRepo.Store(ctx, &c); err != nil {
		return domain.Comment{}, err
	}
	return c, nil
}

// Delete soft-deletes a comment after verifying the thread exists and the
// actor owns the comment. The record itself stays; presentation masks it.
func (s *service) Delete(ctx context.Context, threadID, commentID, owner string) error {
	if err := s.threadRepo.VerifyAvailable(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyOwner(ctx, commentID, owner); err != nil {
		return err
	}
	return s.commentRepo.SoftDelete(ctx, commentID)
}
