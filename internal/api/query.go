package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// queryLimit 解析 ?limit=N，非法时已写出422响应并返回 false
func queryLimit(c *gin.Context, def, max int) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return def, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		respondQuery(c, FieldError{Field: "limit", Rule: "int"})
		return 0, false
	}
	if n < 1 || n > max {
		respondQuery(c, FieldError{Field: "limit", Rule: "range", Param: fmt.Sprintf("1-%d", max)})
		return 0, false
	}
	return n, true
}

func respondQuery(c *gin.Context, fe FieldError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"code":   http.StatusUnprocessableEntity,
		"msg":    "查询参数错误",
		"errors": []FieldError{fe},
	})
}
