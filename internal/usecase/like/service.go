package like

import (
	"context"

	"github.com/danupratama/forum-api/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	likeRepo    domain.CommentLikeRepository
}

var _ domain.CommentLikeUsecase = (*service)(nil)

func NewService(threadRepo domain.ThreadRepository, commentRepo domain.CommentRepository, likeRepo domain.CommentLikeRepository) *service {
	return &service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
	}
}

// Toggle flips the like state for one (comment, owner) pair. The payload is
// validated before any store access; concurrent toggles for the same pair are
// resolved by the storage uniqueness constraint, not serialized here.
func (s *service) Toggle(ctx context.Context, p domain.ToggleCommentLike) error {
	threadID, commentID, owner, err := p.Validate()
	if err != nil {
		return err
	}

	if err := s.threadRepo.VerifyAvailable(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyAvailable(ctx, commentID); err != nil {
		return err
	}

	liked, err := s.likeRepo.LikeExists(ctx, commentID, owner)
	if err != nil {
		return err
	}

	if liked {
		return s.likeRepo.RemoveLike(ctx, commentID, owner)
	}
	return s.likeRepo.AddLike(ctx, commentID, owner)
}
