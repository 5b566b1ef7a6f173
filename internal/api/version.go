package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pallet-service/internal/pkg/version"
)

// GetVersion 版本和 git 提交信息
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, version.Get())
}
