package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"social_network/internal/middleware"
	"social_network/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

type CreatePostReq struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// UpdatePostReq 可更新字段的白名单；PATCH 只合并给到的字段
type UpdatePostReq struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// Create 创建帖子接口
func (h *PostHandler) Create(c *gin.Context) {
	usrID := c.MustGet(middleware.ContextUserIDKey).(uint64)

	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if _, err := h.svc.Create(usrID, req.Title, req.Body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "200",
		"message": "Post is created",
	})
}

// Get 单个帖子，查不到就是真 404
func (h *PostHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}

	post, err := h.svc.Get(id)
	if errors.Is(err, service.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListByUsername 必须带 username 参数；用户不存在返回 404
func (h *PostHandler) ListByUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "username is required"})
		return
	}

	posts, err := h.svc.ListByUsername(username)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  http.StatusNotFound,
			"message": fmt.Sprintf("User with '%s' username does not exist", username),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Update 处理 PUT 与 PATCH。注意这里沿用对外契约：
// 帖子不存在和无权限都回 HTTP 200，差错编码放在 body 的 status 字段里。
func (h *PostHandler) Update(c *gin.Context) {
	usrID := c.MustGet(middleware.ContextUserIDKey).(uint64)

	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}

	var req UpdatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	// PUT 是整体替换，两个字段都要给
	if c.Request.Method == http.MethodPut && (req.Title == nil || req.Body == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "title and body are required"})
		return
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Body != nil {
		fields["body"] = *req.Body
	}

	switch err := h.svc.Update(usrID, id, fields); {
	case errors.Is(err, service.ErrPostNotFound):
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusNotFound,
			"message": "Post is not found",
		})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusForbidden,
			"message": "Cannot update post by current user",
		})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Post successfully updated",
		})
	}
}

// Delete 与 Update 同一套 body 内编码的差错契约
func (h *PostHandler) Delete(c *gin.Context) {
	usrID := c.MustGet(middleware.ContextUserIDKey).(uint64)

	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}

	switch err := h.svc.Delete(usrID, id); {
	case errors.Is(err, service.ErrPostNotFound):
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusNotFound,
			"message": "Post is not found",
		})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusForbidden,
			"message": "Cannot delete post by current user",
		})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Post successfully deleted",
		})
	}
}
