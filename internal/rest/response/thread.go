package response

import "github.com/danupratama/forum-api/domain"

const DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

type Thread struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// NewThreadFromDomain: Domain -> Response
func NewThreadFromDomain(t *domain.Thread) Thread {
	return Thread{
		ID:        t.ID,
		Title:     t.Title,
		Body:      t.Body,
		Username:  t.Username,
		CreatedAt: t.CreatedAt.Format(DateTimeFormat),
	}
}

type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThreadFromDomain(t *domain.Thread) AddedThread {
	return AddedThread{
		ID:    t.ID,
		Title: t.Title,
		Owner: t.Owner,
	}
}

// ThreadDetail is the wire form of the composed detail view. Comments always
// serialize as an array, replies likewise; neither is ever null.
type ThreadDetail struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

type CommentDetail struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Date      string        `json:"date"`
	Content   string        `json:"content"`
	LikeCount int64         `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}

type ReplyDetail struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

func NewThreadDetailFromDomain(d domain.ThreadDetail) ThreadDetail {
	comments := make([]CommentDetail, len(d.Comments))
	for i, c := range d.Comments {
		replies := make([]ReplyDetail, len(c.Replies))
		for j, r := range c.Replies {
			replies[j] = ReplyDetail{
				ID:       r.ID,
				Content:  r.Content,
				Date:     r.Date.Format(DateTimeFormat),
				Username: r.Username,
			}
		}
		comments[i] = CommentDetail{
			ID:        c.ID,
			Username:  c.Username,
			Date:      c.Date.Format(DateTimeFormat),
			Content:   c.Content,
			LikeCount: c.LikeCount,
			Replies:   replies,
		}
	}
	return ThreadDetail{
		ID:       d.ID,
		Title:    d.Title,
		Body:     d.Body,
		Date:     d.Date.Format(DateTimeFormat),
		Username: d.Username,
		Comments: comments,
	}
}
