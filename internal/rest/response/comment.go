package response

import "github.com/danupratama/forum-api/domain"

type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// NewAddedCommentFromDomain: Domain -> Response
func NewAddedCommentFromDomain(c *domain.Comment) AddedComment {
	return AddedComment{
		ID:      c.ID,
		Content: c.Content,
		Owner:   c.Owner,
	}
}
