package service

import (
	"context"

	"gorm.io/gorm"

	"pallet-service/internal/model"
	"pallet-service/internal/pkg/database"
)

const (
	DefaultLogLimit = 50
	MaxLogLimit     = 1000
)

// RequestLogService 请求日志的写入和查询
type RequestLogService struct {
	db *gorm.DB
}

func NewRequestLogService(db *gorm.DB) *RequestLogService {
	return &RequestLogService{db: db}
}

func (s *RequestLogService) Record(ctx context.Context, entry *model.RequestLog) error {
	_, err := database.Insert(ctx, s.db, entry)
	return err
}

// Recent 最近的日志，最新的在前
func (s *RequestLogService) Recent(ctx context.Context, limit int) ([]model.RequestLog, error) {
	return database.FetchRecent[model.RequestLog](ctx, s.db, limit)
}
