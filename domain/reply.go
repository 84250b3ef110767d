package domain

import (
	"context"
	"time"
)

// ReplyDeletedPlaceholder replaces the content of a soft-deleted reply in
// every presentation of it.
const ReplyDeletedPlaceholder = "**balasan telah dihapus**"

// RawReply is a reply record as returned by the reply store: ascending
// creation time, grouped only by its own CommentID field.
type RawReply struct {
	ID        string
	Content   string
	CommentID string
	Owner     string
	Date      time.Time
	Username  string
	IsDeleted bool
}

// Reply domain model. Immutable once constructed.
type Reply struct {
	ID        string
	Content   string
	CommentID string
	Owner     string
	Date      time.Time
	Username  string
	IsDeleted bool
}

// NewReply builds a Reply from a raw store record, failing fast with
// ErrMissingField when any mandatory field is absent.
func NewReply(rec RawReply) (Reply, error) {
	for _, f := range []struct{ name, value string }{
		{"id", rec.ID},
		{"content", rec.Content},
		{"commentId", rec.CommentID},
		{"owner", rec.Owner},
	} {
		if _, err := RequireString(f.name, f.value); err != nil {
			return Reply{}, err
		}
	}
	return Reply{
		ID:        rec.ID,
		Content:   rec.Content,
		CommentID: rec.CommentID,
		Owner:     rec.Owner,
		Date:      rec.Date,
		Username:  rec.Username,
		IsDeleted: rec.IsDeleted,
	}, nil
}

// EffectiveContent masks the content once the reply is soft-deleted.
func (r Reply) EffectiveContent() string {
	if r.IsDeleted {
		return ReplyDeletedPlaceholder
	}
	return r.Content
}

// ReplyDetail is the presentation view of one reply inside a comment detail.
type ReplyDetail struct {
	ID       string    `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}

func (r Reply) ToDetail() ReplyDetail {
	return ReplyDetail{
		ID:       r.ID,
		Content:  r.EffectiveContent(),
		Date:     r.Date,
		Username: r.Username,
	}
}

// NewReplyPayload is the payload for the add-reply operation.
type NewReplyPayload struct {
	Content   any
	ThreadID  any
	CommentID any
	Owner     any
}

func (p NewReplyPayload) Validate() (content, threadID, commentID, owner string, err error) {
	if content, err = RequireString("content", p.Content); err != nil {
		return
	}
	if threadID, err = RequireString("threadId", p.ThreadID); err != nil {
		return
	}
	if commentID, err = RequireString("commentId", p.CommentID); err != nil {
		return
	}
	owner, err = RequireString("owner", p.Owner)
	return
}

// ReplyRepository defines the contract for reply data persistence
type ReplyRepository interface {
	// Store persists a new reply. Backfills ID and Date on success.
	Store(ctx context.Context, r *Reply) error

	// GetByCommentIDs retrieves every reply whose owning comment is in ids,
	// ordered by creation time ascending, in a single batched call.
	// An empty id set yields an empty result without error.
	GetByCommentIDs(ctx context.Context, ids []string) ([]RawReply, error)

	// VerifyOwner returns ErrNotFound when the reply doesn't exist and
	// ErrForbidden when it is owned by someone else.
	VerifyOwner(ctx context.Context, id, owner string) error

	// SoftDelete flips the deletion flag.
	SoftDelete(ctx context.Context, id string) error
}

// ReplyUsecase defines the business logic contract for reply operations.
type ReplyUsecase interface {
	Add(ctx context.Context, p NewReplyPayload) (Reply, error)
	Delete(ctx context.Context, threadID, commentID, replyID, owner string) error
}
