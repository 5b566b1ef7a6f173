package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pallet-service/internal/model"
	"pallet-service/internal/pkg/database"
	"pallet-service/internal/types"
)

// PalletService 处理 setpallet / getcamerares 两个业务接口
type PalletService struct {
	db *gorm.DB
}

func NewPalletService(db *gorm.DB) *PalletService {
	return &PalletService{db: db}
}

// SetPallet 记录请求和响应，校验通过后状态总是 Ok
func (s *PalletService) SetPallet(ctx context.Context, req *types.SetPalletRequest) (*types.SetPalletResponse, error) {
	var weight float64
	if req.Weight != nil {
		weight = *req.Weight
	}

	if _, err := database.Insert(ctx, s.db, &model.SetPalletRequest{
		SSCC:    req.SSCC,
		IDPoint: req.IDPoint,
		Message: req.Message,
		Weight:  weight,
	}); err != nil {
		return nil, fmt.Errorf("保存setpallet请求失败: %w", err)
	}

	resp := &types.SetPalletResponse{SSCC: req.SSCC, Status: types.StatusOk}
	if _, err := database.Insert(ctx, s.db, &model.SetPalletResponse{
		SSCC:   resp.SSCC,
		Status: resp.Status,
	}); err != nil {
		return nil, fmt.Errorf("保存setpallet响应失败: %w", err)
	}

	return resp, nil
}

// GetCameraRes 按SSCC查最新扫描记录，结果写入 Probability/Degree/Result
func (s *PalletService) GetCameraRes(ctx context.Context, req *types.GetCameraResRequest) (*types.GetCameraResResponse, error) {
	if _, err := database.Insert(ctx, s.db, &model.CameraResRequest{SSCC: req.SSCC}); err != nil {
		return nil, fmt.Errorf("保存getcamerares请求失败: %w", err)
	}

	result, err := s.ResolveScanStatus(ctx, req.SSCC)
	if err != nil {
		return nil, err
	}

	// TODO: Probability/Degree 需要相机侧提供独立字段后再拆分
	row := &model.CameraResResponse{
		IDPoint:     types.CameraIDPoint,
		SSCC:        req.SSCC,
		Status:      types.StatusPalletResult,
		Probability: result,
		Degree:      result,
		Result:      result,
	}
	if _, err := database.Insert(ctx, s.db, row); err != nil {
		return nil, fmt.Errorf("保存getcamerares响应失败: %w", err)
	}

	return &types.GetCameraResResponse{
		IDPoint:     row.IDPoint,
		SSCC:        row.SSCC,
		Status:      row.Status,
		Probability: row.Probability,
		Degree:      row.Degree,
		Result:      row.Result,
	}, nil
}

// ResolveScanStatus 返回该SSCC最新扫描记录的状态，没有记录时返回 "Not found"
func (s *PalletService) ResolveScanStatus(ctx context.Context, sscc string) (string, error) {
	scan, err := database.FetchLatestByKey[model.ScanRecord](ctx, s.db, "SSCC", sscc)
	if errors.Is(err, database.ErrNotFound) {
		return types.ResultNotFound, nil
	}
	if err != nil {
		return "", fmt.Errorf("查询扫描记录失败: %w", err)
	}
	return scan.Status, nil
}
