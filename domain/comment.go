package domain

import (
	"context"
	"time"
)

// CommentDeletedPlaceholder replaces the content of a soft-deleted comment in
// every presentation of it.
const CommentDeletedPlaceholder = "**komentar telah dihapus**"

// RawComment is a comment record as returned by the comment store, ordered by
// creation time. It has not been validated yet; NewComment does that.
type RawComment struct {
	ID        string
	Content   string
	ThreadID  string
	Owner     string
	Date      time.Time
	Username  string
	IsDeleted bool
}

// Comment domain model. Immutable once constructed.
type Comment struct {
	ID        string
	Content   string
	ThreadID  string
	Owner     string
	Date      time.Time
	Username  string
	IsDeleted bool
}

// NewComment builds a Comment from a raw store record, failing fast with
// ErrMissingField when any mandatory field is absent.
func NewComment(rec RawComment) (Comment, error) {
	for _, f := range []struct{ name, value string }{
		{"id", rec.ID},
		{"content", rec.Content},
		{"threadId", rec.ThreadID},
		{"owner", rec.Owner},
	} {
		if _, err := RequireString(f.name, f.value); err != nil {
			return Comment{}, err
		}
	}
	return Comment{
		ID:        rec.ID,
		Content:   rec.Content,
		ThreadID:  rec.ThreadID,
		Owner:     rec.Owner,
		Date:      rec.Date,
		Username:  rec.Username,
		IsDeleted: rec.IsDeleted,
	}, nil
}

// EffectiveContent masks the content once the comment is soft-deleted.
func (c Comment) EffectiveContent() string {
	if c.IsDeleted {
		return CommentDeletedPlaceholder
	}
	return c.Content
}

// CommentDetail is the presentation view of one comment inside a thread detail.
type CommentDetail struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Date      time.Time     `json:"date"`
	Content   string        `json:"content"`
	LikeCount int64         `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}

// ToDetail produces the presentation record. replies must already be the
// reply views scoped to this comment; the entity does not filter. A zero
// likeCount stands for "no likes recorded".
func (c Comment) ToDetail(replies []ReplyDetail, likeCount int64) CommentDetail {
	if replies == nil {
		replies = []ReplyDetail{}
	}
	return CommentDetail{
		ID:        c.ID,
		Username:  c.Username,
		Date:      c.Date,
		Content:   c.EffectiveContent(),
		LikeCount: likeCount,
		Replies:   replies,
	}
}

// NewComment payload for the add-comment operation; untyped fields are
// validated before any store access.
type NewCommentPayload struct {
	Content  any
	ThreadID any
	Owner    any
}

func (p NewCommentPayload) Validate() (content, threadID, owner string, err error) {
	if content, err = RequireString("content", p.Content); err != nil {
		return
	}
	if threadID, err = RequireString("threadId", p.ThreadID); err != nil {
		return
	}
	owner, err = RequireString("owner", p.Owner)
	return
}

// CommentRepository defines the contract for comment data persistence
type CommentRepository interface {
	// Store persists a new comment. Backfills ID and Date on success.
	Store(ctx context.Context, c *Comment) error

	// GetByThreadID retrieves every comment of a thread ordered by creation
	// time ascending. Returns an empty slice for a thread with no comments.
	GetByThreadID(ctx context.Context, threadID string) ([]RawComment, error)

	// VerifyAvailable checks that a comment exists. Returns ErrNotFound otherwise.
	VerifyAvailable(ctx context.Context, id string) error

	// VerifyOwner returns ErrNotFound when the comment doesn't exist and
	// ErrForbidden when it is owned by someone else.
	VerifyOwner(ctx context.Context, id, owner string) error

	// SoftDelete flips the deletion flag. The record is never physically removed.
	SoftDelete(ctx context.Context, id string) error
}

// CommentUsecase defines the business logic contract for comment operations.
type CommentUsecase interface {
	Add(ctx context.Context, p NewCommentPayload) (Comment, error)
	Delete(ctx context.Context, threadID, commentID, owner string) error
}
