package service

import (
	"context"

	"gorm.io/gorm"

	"pallet-service/internal/pkg/database"
)

const DefaultViewLimit = 100

// ViewerService 只读查看业务表
type ViewerService struct {
	db *gorm.DB
}

func NewViewerService(db *gorm.DB) *ViewerService {
	return &ViewerService{db: db}
}

func (s *ViewerService) Tables() []string {
	return database.ViewableTables()
}

func (s *ViewerService) Recent(ctx context.Context, table string, limit int) (interface{}, error) {
	return database.FetchRecentRows(ctx, s.db, table, limit)
}
