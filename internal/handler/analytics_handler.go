package handler

import (
	"encoding/json"
	"net/http"

	"social_network/internal/middleware"
	"social_network/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	svc *service.AnalyticsService
}

func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// LikesPerDay 按天统计调用方的点赞数。
// data 是对内层 map 再做一次 JSON 编码的字符串，客户端按此契约解析。
// 日期解析失败按未处理异常对待：裸 500，无结构化 body。
func (h *AnalyticsHandler) LikesPerDay(c *gin.Context) {
	usrID := c.MustGet(middleware.ContextUserIDKey).(uint64)

	result, err := h.svc.LikesPerDay(c.Request.Context(), usrID, c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"data":   string(data),
	})
}
