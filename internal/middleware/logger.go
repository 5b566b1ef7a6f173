package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"pallet-service/internal/model"
	"pallet-service/internal/pkg/logger"
)

// RequestLogRecorder 持久化请求日志
type RequestLogRecorder interface {
	Record(ctx context.Context, entry *model.RequestLog) error
}

// Logger 请求日志中间件：写控制台日志并保存一行 request_logs
// 保存失败只记警告，不影响响应
func Logger(recorder RequestLogRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 开始时间
		startTime := time.Now()

		// 处理请求
		c.Next()

		// 执行时间
		latencyTime := time.Since(startTime)

		reqMethod := c.Request.Method
		reqPath := c.Request.URL.Path
		statusCode := c.Writer.Status()
		clientIP := c.ClientIP()
		userAgent := c.Request.UserAgent()

		if statusCode >= 500 {
			logger.Errorf("[%s] %s %s %d %v \"%s\" - Internal Server Error",
				clientIP, reqMethod, reqPath, statusCode, latencyTime, userAgent)
		} else if statusCode >= 400 {
			logger.Warnf("[%s] %s %s %d %v \"%s\" - Client Error",
				clientIP, reqMethod, reqPath, statusCode, latencyTime, userAgent)
		} else {
			logger.Infof("[%s] %s %s %d %v \"%s\"",
				clientIP, reqMethod, reqPath, statusCode, latencyTime, userAgent)
		}

		if recorder == nil {
			return
		}

		entry := &model.RequestLog{
			Method:     reqMethod,
			Path:       reqPath,
			StatusCode: statusCode,
			DurationMS: float64(latencyTime.Microseconds()) / 1000,
			ClientIP:   optional(clientIP),
			UserAgent:  optional(userAgent),
			RequestID:  c.GetString(RequestIDKey),
		}
		persist(c.Request.Context(), recorder, entry)
	}
}

func persist(ctx context.Context, recorder RequestLogRecorder, entry *model.RequestLog) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warnf("保存请求日志时panic: %v", r)
		}
	}()
	// 客户端断开后仍然写日志
	if err := recorder.Record(context.WithoutCancel(ctx), entry); err != nil {
		logger.Warnf("保存请求日志失败: %v", err)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
