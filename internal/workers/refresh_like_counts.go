package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/danupratama/forum-api/domain"
)

// refreshLikeCountsWorker recomputes cached like counts from the database for
// comments whose likes were recently toggled. The synchronous toggle path
// adjusts the cache opportunistically; this worker is what makes the cached
// figures converge after races or cache evictions.
type refreshLikeCountsWorker struct {
	likeRepo domain.CommentLikeRepository
	cache    domain.CommentLikeCache
	ch       chan string
}

var _ domain.LikeCountRefresher = (*refreshLikeCountsWorker)(nil)

func NewRefreshLikeCountsWorker(likeRepo domain.CommentLikeRepository, cache domain.CommentLikeCache) *refreshLikeCountsWorker {
	return &refreshLikeCountsWorker{
		likeRepo: likeRepo,
		cache:    cache,
		ch:       make(chan string, 1024),
	}
}

// Send enqueues a comment id for a count refresh. Never blocks.
func (w *refreshLikeCountsWorker) Send(commentID string) {
	select {
	case w.ch <- commentID:
	default:
		logrus.Info("refreshLikeCountsWorker's channel is full, task dropped")
	}
}

func (w *refreshLikeCountsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	batch := make([]string, 0, batchSize)
	for {
		select {
		case id := <-w.ch:
			batch = append(batch, id)
			if len(batch) == batchSize {
				w.flush(ctx, batch)
				batch = make([]string, 0, batchSize)
			}
		case <-ticker.C:
			w.flush(ctx, batch)
			batch = make([]string, 0, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down refreshLikeCountsWorker, flushing remaining tasks...")
			w.flush(context.Background(), batch)
			return
		}
	}
}

func (w *refreshLikeCountsWorker) flush(ctx context.Context, batch []string) {
	if len(batch) == 0 {
		return
	}

	seen := make(map[string]struct{}, len(batch))
	ids := make([]string, 0, len(batch))
	for _, id := range batch {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	counts, err := w.likeRepo.CountsByCommentIDs(ctx, ids)
	if err != nil {
		logrus.Errorf("failed to recount likes for %d comments: %v", len(ids), err)
		return
	}

	// Ids missing from the grouped result have zero likes; cache the zero so
	// reads stop falling through to the database for them.
	fresh := make(map[string]int64, len(ids))
	for _, id := range ids {
		fresh[id] = counts[id]
	}
	if err := w.cache.MSetCounts(ctx, fresh); err != nil {
		logrus.Errorf("failed to store refreshed like counts: %v", err)
	}
}
