package domain

import (
	"context"
	"time"
)

// Thread is representing the Thread data struct
type Thread struct {
	ID        string    // Unique identifier for the thread
	Title     string    // Thread title
	Body      string    // Thread body content
	Owner     string    // ID of the user who created the thread
	Username  string    // Display name of the thread author
	CreatedAt time.Time // Creation timestamp
}

// NewThread is the payload for creating a thread. Fields are untyped because
// they come straight from user input; Validate applies the fail-fast rules.
type NewThread struct {
	Title any
	Body  any
	Owner any
}

// Validate returns the typed title/body/owner, failing with ErrMissingField
// or ErrInvalidType before anything touches a store.
func (p NewThread) Validate() (title, body, owner string, err error) {
	if title, err = RequireString("title", p.Title); err != nil {
		return
	}
	if body, err = RequireString("body", p.Body); err != nil {
		return
	}
	owner, err = RequireString("owner", p.Owner)
	return
}

// ThreadDetail is the composed view of a thread: the thread fields plus its
// comments in creation order, each carrying replies and a like count.
type ThreadDetail struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

// ToDetail composes the thread with its already-formatted comments.
// A nil slice is normalized so the view never carries an absent comments field.
func (t Thread) ToDetail(comments []CommentDetail) ThreadDetail {
	if comments == nil {
		comments = []CommentDetail{}
	}
	return ThreadDetail{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     t.CreatedAt,
		Username: t.Username,
		Comments: comments,
	}
}

// ThreadRepository defines the contract for thread data persistence
type ThreadRepository interface {
	// GetByID retrieves a single thread by its ID.
	// Returns ErrNotFound if the thread doesn't exist.
	GetByID(ctx context.Context, id string) (Thread, error)

	// VerifyAvailable checks that a thread exists.
	// Returns ErrNotFound otherwise.
	VerifyAvailable(ctx context.Context, id string) error

	// Store creates a new thread. Backfills ID and CreatedAt on success.
	Store(ctx context.Context, t *Thread) error

	// Fetch retrieves a paginated list of threads, newest first.
	// cursor: pass the value returned by the previous page, or empty for the first page.
	Fetch(ctx context.Context, cursor string, num int64) ([]Thread, error)
}

// ThreadUsecase defines the business logic contract for thread operations.
type ThreadUsecase interface {
	// GetThreadDetail assembles the full detail view for one thread.
	// Returns ErrNotFound if the thread doesn't exist; no partial view is ever returned.
	GetThreadDetail(ctx context.Context, threadID string) (ThreadDetail, error)

	// Store validates and persists a new thread.
	Store(ctx context.Context, p NewThread) (Thread, error)

	// Fetch lists threads with cursor pagination.
	Fetch(ctx context.Context, cursor string, num int64) ([]Thread, string, error)
}
