package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pallet-service/internal/service"
	"pallet-service/internal/types"
)

type PalletAPI struct {
	svc *service.PalletService
}

func NewPalletAPI(svc *service.PalletService) *PalletAPI {
	return &PalletAPI{svc: svc}
}

// SetPallet 托盘到达识别点
func (a *PalletAPI) SetPallet(c *gin.Context) {
	var req types.SetPalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	resp, err := a.svc.SetPallet(c.Request.Context(), &req)
	if err != nil {
		respondStorage(c, "保存托盘数据失败", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCameraRes 查询相机识别结果
func (a *PalletAPI) GetCameraRes(c *gin.Context) {
	var req types.GetCameraResRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	resp, err := a.svc.GetCameraRes(c.Request.Context(), &req)
	if err != nil {
		respondStorage(c, "查询识别结果失败", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
