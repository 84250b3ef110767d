package thread

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danupratama/forum-api/domain"
	"github.com/danupratama/forum-api/internal/repository"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	likeRepo    domain.CommentLikeRepository
}

var _ domain.ThreadUsecase = (*service)(nil)

// NewService will create a new thread service object
func NewService(
	threadRepo domain.ThreadRepository,
	commentRepo domain.CommentRepository,
	replyRepo domain.ReplyRepository,
	likeRepo domain.CommentLikeRepository,
) *service {
	return &service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
		likeRepo:    likeRepo,
	}
}

// GetThreadDetail assembles the composed view for one thread: the thread
// itself, its comments in creation order, each comment's replies and like
// count, with soft-deleted content masked. Replies and like counts are each
// resolved with a single batched call over the comment-id set.
func (s *service) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	thread, err := s.threadRepo.GetByID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	rawComments, err := s.commentRepo.GetByThreadID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments := make([]domain.Comment, len(rawComments))
	for i, rec := range rawComments {
		if comments[i], err = domain.NewComment(rec); err != nil {
			return domain.ThreadDetail{}, err
		}
	}

	commentIDs := collectCommentIDs(comments)

	// Both batched reads depend only on the id set, so they run concurrently
	// and join before the fold.
	var (
		rawReplies []domain.RawReply
		likeCounts map[string]int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawReplies, err = s.replyRepo.GetByCommentIDs(gctx, commentIDs)
		return err
	})
	g.Go(func() error {
		var err error
		likeCounts, err = s.likeRepo.CountsByCommentIDs(gctx, commentIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ThreadDetail{}, err
	}

	replies := make([]domain.Reply, len(rawReplies))
	for i, rec := range rawReplies {
		if replies[i], err = domain.NewReply(rec); err != nil {
			return domain.ThreadDetail{}, err
		}
	}

	details := make([]domain.CommentDetail, len(comments))
	for i, c := range comments {
		related := []domain.ReplyDetail{}
		for _, r := range replies {
			if r.CommentID == c.ID {
				related = append(related, r.ToDetail())
			}
		}
		details[i] = c.ToDetail(related, likeCounts[c.ID])
	}

	return thread.ToDetail(details), nil
}

// collectCommentIDs derives the ordered id set for the batched calls.
// Ids from one thread are unique by construction; deduplication here keeps
// that an enforced invariant instead of an assumption about storage.
func collectCommentIDs(comments []domain.Comment) []string {
	ids := make([]string, 0, len(comments))
	seen := make(map[string]struct{}, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		ids = append(ids, c.ID)
	}
	return ids
}

func (s *service) Store(ctx context.Context, p domain.NewThread) (domain.Thread, error) {
	title, body, owner, err := p.Validate()
	if err != nil {
		return domain.Thread{}, err
	}

	t := domain.Thread{
		Title:     title,
		Body:      body,
		Owner:     owner,
		CreatedAt: time.Now(),
	}
	if err := s.threadRepo.Store(ctx, &t); err != nil {
		return domain.Thread{}, err
	}
	return t, nil
}

func (s *service) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Thread, string, error) {
	res, err := s.threadRepo.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []domain.Thread{}, "", nil
	}
	return res, repository.EncodeCursor(res[len(res)-1].CreatedAt), nil
}
