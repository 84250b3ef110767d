package domain

import "context"

// LikeCountRefresher reconciles cached like counts against the database in
// the background. Toggles enqueue the touched comment id; the worker batches
// and recomputes.
type LikeCountRefresher interface {
	Start(ctx context.Context)

	// Send enqueues a comment id whose cached count should be recomputed.
	// Never blocks; drops when the queue is full.
	Send(commentID string)
}
