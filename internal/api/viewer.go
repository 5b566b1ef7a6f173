package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pallet-service/internal/pkg/database"
	"pallet-service/internal/service"
)

type ViewerAPI struct {
	svc *service.ViewerService
}

func NewViewerAPI(svc *service.ViewerService) *ViewerAPI {
	return &ViewerAPI{svc: svc}
}

// ListTables 可查看的表
func (a *ViewerAPI) ListTables(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tables": a.svc.Tables()})
}

// GetTableRows 查看某张表最近的数据
func (a *ViewerAPI) GetTableRows(c *gin.Context) {
	limit, ok := queryLimit(c, service.DefaultViewLimit, service.MaxLogLimit)
	if !ok {
		return
	}

	table := c.Param("table")
	rows, err := a.svc.Recent(c.Request.Context(), table, limit)
	if errors.Is(err, database.ErrUnknownTable) {
		c.JSON(http.StatusNotFound, gin.H{
			"code": 404,
			"msg":  "表不存在: " + table,
		})
		return
	}
	if err != nil {
		respondStorage(c, "读取表数据失败", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"table": table,
		"rows":  rows,
	})
}
