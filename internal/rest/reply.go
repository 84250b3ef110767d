package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danupratama/forum-api/domain"
	"github.com/danupratama/forum-api/internal/rest/response"
)

type ReplyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *ReplyHandler {
	return &ReplyHandler{
		Service: svc,
	}
}

// CreateReply attaches a new reply to the comment in the path
func (h *ReplyHandler) CreateReply(c *gin.Context) {
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

	reply, err := h.Service.Add(c.Request.Context(), domain.NewReplyPayload{
		Content:   body["content"],
		ThreadID:  c.Param("id"),
		CommentID: c.Param("commentId"),
		Owner:     owner,
	})
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewAddedReplyFromDomain(&reply))
}

// DeleteReply soft-deletes the reply when the caller owns it
func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	owner, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	err := h.Service.Delete(c.Request.Context(), c.Param("id"), c.Param("commentId"), c.Param("replyId"), owner.(string))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
