package database

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pallet-service/internal/model"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrUnknownTable = errors.New("unknown table")
)

var orderByNewest = clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}

// Insert 追加一行并返回自增ID
func Insert(ctx context.Context, db *gorm.DB, row model.Row) (uint, error) {
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return 0, fmt.Errorf("insert into %s: %w", row.TableName(), err)
	}
	return row.RowID(), nil
}

// FetchLatestByKey 返回 column = value 的最新一行(按ID倒序)
func FetchLatestByKey[T any](ctx context.Context, db *gorm.DB, column string, value interface{}) (*T, error) {
	var row T
	err := db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Order(orderByNewest).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch latest by %s: %w", column, err)
	}
	return &row, nil
}

// FetchRecent 返回最近的 limit 行，最新的在前
func FetchRecent[T any](ctx context.Context, db *gorm.DB, limit int) ([]T, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}
	rows := make([]T, 0, limit)
	if err := db.WithContext(ctx).Order(orderByNewest).Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch recent: %w", err)
	}
	return rows, nil
}

type viewFunc func(ctx context.Context, db *gorm.DB, limit int) (interface{}, error)

func view[T any](ctx context.Context, db *gorm.DB, limit int) (interface{}, error) {
	return FetchRecent[T](ctx, db, limit)
}

// 可以通过查看接口读取的表
var viewers = map[string]viewFunc{
	model.SetPalletRequest{}.TableName():  view[model.SetPalletRequest],
	model.SetPalletResponse{}.TableName(): view[model.SetPalletResponse],
	model.CameraResRequest{}.TableName():  view[model.CameraResRequest],
	model.CameraResResponse{}.TableName(): view[model.CameraResResponse],
	model.ScanRecord{}.TableName():        view[model.ScanRecord],
}

// ViewableTables 返回可查看的表名，按字母排序
func ViewableTables() []string {
	names := make([]string, 0, len(viewers))
	for name := range viewers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FetchRecentRows 按表名读取最近的行
func FetchRecentRows(ctx context.Context, db *gorm.DB, table string, limit int) (interface{}, error) {
	fn, ok := viewers[table]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return fn(ctx, db, limit)
}
