package reply

import (
	"context"
	"time"

	"github.com/danupratama/forum-api/domain"
)

type service struct {
	replyRepo   domain.ReplyRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(replyRepo domain.ReplyRepository, commentRepo domain.CommentRepository, threadRepo domain.ThreadRepository) *service {
	return &service{
		replyRepo:   replyRepo,
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
	}
}

func (s *service) Add(ctx context.Context, p domain.NewReplyPayload) (domain.Reply, error) {
	content, threadID, commentID, owner, err := p.Validate()
	if err != nil {
		return domain.Reply{}, err
	}

	if err := s.threadRepo.VerifyAvailable(ctx, threadID); err != nil {
		return domain.Reply{}, err
	}
	if err := s.commentRepo.VerifyAvailable(ctx, commentID); err != nil {
		return domain.Reply{}, err
	}

	r := domain.Reply{
		Content:   content,
		CommentID: commentID,
		Owner:     owner,
		Date:      time.Now(),
	}
	if err := s.replyRepo.Store(ctx, &r); err != nil {
		return domain.Reply{}, err
	}
	return r, nil
}

func (s *service) Delete(ctx context.Context, threadID, commentID, replyID, owner string) error {
	if err := s.threadRepo.VerifyAvailable(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyAvailable(ctx, commentID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyOwner(ctx, replyID, owner); err != nil {
		return err
	}
	return s.replyRepo.SoftDelete(ctx, replyID)
}
