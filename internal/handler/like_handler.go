package handler

import (
	"errors"
	"net/http"
	"strconv"

	"social_network/internal/middleware"
	"social_network/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	svc *service.LikeService
}

func NewLikeHandler(svc *service.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// Like 重复点赞不报错，回 208 告知已处于目标状态
func (h *LikeHandler) Like(c *gin.Context) {
	usrID := c.MustGet(middleware.ContextUserIDKey).(uint64)

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}

	changed, err := h.svc.Like(c.Request.Context(), usrID, postID)
	if errors.Is(err, service.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	if !changed {
		c.JSON(http.StatusAlreadyReported, gin.H{
			"status":  http.StatusAlreadyReported,
			"message": "You have already liked the post",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": "Liked the post",
	})
}

// Unlike 取消点赞，同样幂等
func (h *LikeHandler) Unlike(c *gin.Context) {
	usrID := c.MustGet(middleware.ContextUserIDKey).(uint64)

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}

	changed, err := h.svc.Unlike(c.Request.Context(), usrID, postID)
	if errors.Is(err, service.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	if !changed {
		c.JSON(http.StatusAlreadyReported, gin.H{
			"status":  http.StatusAlreadyReported,
			"message": "You have already unliked the post",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": "Unliked the post",
	})
}
