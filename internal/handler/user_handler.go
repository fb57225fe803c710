package handler

import (
	"errors"
	"net/http"
	"strconv"

	"social_network/internal/middleware"
	"social_network/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

// SignUpReq 注册请求体
type SignUpReq struct {
	Username string `json:"username" binding:"required,max=150"`
	Password string `json:"password" binding:"required"`
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// SignUp 注册接口
func (h *UserHandler) SignUp(c *gin.Context) {
	var req SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if _, err := h.svc.SignUp(req.Username, req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     "True",
		"status code": http.StatusCreated,
		"message":     "User is successfully registered",
	})
}

// Login 登录接口
func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"AccessToken": token.AccessToken, "RefreshToken": token.RefreshToken})
}

func (h *UserHandler) Logout(c *gin.Context) {
	usrID := c.MustGet(middleware.ContextUserIDKey).(uint64)

	if err := h.svc.Logout(usrID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// TokenRefresh 利用 refresh 来更新 access
func (h *UserHandler) TokenRefresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	token, err := h.svc.Refresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"AccessToken": token.AccessToken, "RefreshToken": token.RefreshToken})
}

// Activity 公开查询用户的最近登录/最近请求时间
func (h *UserHandler) Activity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid user id"})
		return
	}

	user, err := h.svc.Activity(id)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":          user.Username,
		"last login time":   user.LastLogin,
		"last request time": user.LastRequestTime,
	})
}

// DeleteAccount 注销自己：点赞删掉，帖子留下但 owner 置空
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	usrID := c.MustGet(middleware.ContextUserIDKey).(uint64)

	if err := h.svc.DeleteAccount(usrID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
