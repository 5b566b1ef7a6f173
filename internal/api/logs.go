package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pallet-service/internal/service"
)

type LogAPI struct {
	svc *service.RequestLogService
}

func NewLogAPI(svc *service.RequestLogService) *LogAPI {
	return &LogAPI{svc: svc}
}

// GetLogs 最近的请求日志，最新的在前
func (a *LogAPI) GetLogs(c *gin.Context) {
	limit, ok := queryLimit(c, service.DefaultLogLimit, service.MaxLogLimit)
	if !ok {
		return
	}

	logs, err := a.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		respondStorage(c, "获取请求日志失败", err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
