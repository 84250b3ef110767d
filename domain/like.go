package domain

import (
	"context"
	"time"
)

// CommentLike is representing a like record. A (CommentID, Owner) pair is
// unique; a like is either present or absent, there is no like history.
type CommentLike struct {
	CommentID string
	Owner     string
	CreatedAt time.Time
}

// ToggleCommentLike is the toggle payload. Fields are untyped because
// validation must distinguish an absent field from a non-string one before
// any store access happens.
type ToggleCommentLike struct {
	ThreadID  any
	CommentID any
	Owner     any
}

func (p ToggleCommentLike) Validate() (threadID, commentID, owner string, err error) {
	if threadID, err = RequireString("threadId", p.ThreadID); err != nil {
		return
	}
	if commentID, err = RequireString("commentId", p.CommentID); err != nil {
		return
	}
	owner, err = RequireString("owner", p.Owner)
	return
}

// CommentLikeRepository defines the contract for like persistence.
// Pair uniqueness is enforced by the storage layer; concurrent toggles for
// the same pair are not serialized here.
type CommentLikeRepository interface {
	// AddLike creates the like record for the pair. A duplicate-insert race
	// resolves to success: the pair already being liked is the target state.
	AddLike(ctx context.Context, commentID, owner string) error

	// LikeExists reports whether the pair has a like record.
	LikeExists(ctx context.Context, commentID, owner string) (bool, error)

	// RemoveLike deletes the like record for the pair.
	// Returns ErrNotFound if no such record exists.
	RemoveLike(ctx context.Context, commentID, owner string) error

	// CountsByCommentIDs returns like counts for the given comment ids in a
	// single batched call. Only ids with at least one like appear in the
	// result; omission means zero. An empty input yields an empty map
	// without any round trip to storage.
	CountsByCommentIDs(ctx context.Context, commentIDs []string) (map[string]int64, error)
}

// CommentLikeCache caches per-comment like counts. A cached zero is
// meaningful: it records that the comment has no likes, sparing the database
// on subsequent reads.
type CommentLikeCache interface {
	// MGetCounts resolves counts for the given ids in one round trip and
	// reports which ids were absent from the cache.
	MGetCounts(ctx context.Context, commentIDs []string) (found map[string]int64, missing []string, err error)

	// MSetCounts stores the given counts.
	MSetCounts(ctx context.Context, counts map[string]int64) error

	// SetCount stores a single count.
	SetCount(ctx context.Context, commentID string, count int64) error

	// IncrCount / DecrCount adjust an already-cached count.
	// Returns ErrCacheMiss when the count is not cached; the caller may
	// ignore that, the next read loads it from the database.
	IncrCount(ctx context.Context, commentID string) error
	DecrCount(ctx context.Context, commentID string) error
}

// CommentLikeUsecase defines the business logic contract for the toggle operation.
type CommentLikeUsecase interface {
	// Toggle flips the like state for the (comment, owner) pair:
	// not-liked becomes liked, liked becomes not-liked.
	Toggle(ctx context.Context, p ToggleCommentLike) error
}
