package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pallet-service/internal/model"
	"pallet-service/internal/pkg/database"
)

const (
	DefaultSSCC       = "148102689000000010"
	DefaultScanStatus = "Ok"
)

type ScanService struct {
	db *gorm.DB
}

func NewScanService(db *gorm.DB) *ScanService {
	return &ScanService{db: db}
}

// AddScan 写入一条扫描记录，返回新ID
func (s *ScanService) AddScan(ctx context.Context, sscc, status string) (uint, error) {
	id, err := database.Insert(ctx, s.db, &model.ScanRecord{SSCC: sscc, Status: status})
	if err != nil {
		return 0, fmt.Errorf("写入扫描记录失败: %w", err)
	}
	return id, nil
}
