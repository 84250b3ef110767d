package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danupratama/forum-api/domain"
)

type LikeHandler struct {
	Service domain.CommentLikeUsecase
}

func NewLikeHandler(svc domain.CommentLikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// ToggleLike flips the caller's like on the comment in the path
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	owner, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	err := h.Service.Toggle(c.Request.Context(), domain.ToggleCommentLike{
		ThreadID:  c.Param("id"),
		CommentID: c.Param("commentId"),
		Owner:     owner,
	})
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
