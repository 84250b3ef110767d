package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danupratama/forum-api/domain"
	"github.com/danupratama/forum-api/internal/rest/response"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// CreateComment attaches a new comment to the thread in the path
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	owner, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	comment, err := h.Service.Add(c.Request.Context(), domain.NewCommentPayload{
		Content:  body["content"],
		ThreadID: c.Param("id"),
		Owner:    owner,
	})
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewAddedCommentFromDomain(&comment))
}

// DeleteComment soft-deletes the comment when the caller owns it
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	owner, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	err := h.Service.Delete(c.Request.Context(), c.Param("id"), c.Param("commentId"), owner.(string))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
