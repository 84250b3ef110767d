package response

import "github.com/danupratama/forum-api/domain"

type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// NewAddedReplyFromDomain: Domain -> Response
func NewAddedReplyFromDomain(r *domain.Reply) AddedReply {
	return AddedReply{
		ID:      r.ID,
		Content: r.Content,
		Owner:   r.Owner,
	}
}
