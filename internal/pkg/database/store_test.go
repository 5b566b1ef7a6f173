package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pallet-service/internal/config"
	"pallet-service/internal/model"
)

func openTempDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.Default().Database
	cfg.Path = filepath.Join(t.TempDir(), "requests.db")

	db, err := Setup(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(config.DatabaseConfig{})
	require.Error(t, err)
}

func TestEnsureSchemaCreatesAllTablesIdempotently(t *testing.T) {
	db := openTempDB(t)

	require.NoError(t, EnsureSchema(db))
	require.NoError(t, EnsureSchema(db))

	for _, table := range []string{
		"request_logs",
		"set_pallet_requests",
		"set_pallet_responses",
		"palletes_scan",
		"get_camera_res_requests",
		"get_camera_res_responses",
	} {
		assert.True(t, db.Migrator().HasTable(table), "table %s", table)
	}
}

func TestSetupCreatesParentDirectory(t *testing.T) {
	cfg := config.Default().Database
	cfg.Path = filepath.Join(t.TempDir(), "data", "nested", "requests.db")

	db, err := Setup(cfg)
	require.NoError(t, err)
	require.NoError(t, Close(db))
}

func TestInsertAssignsIncreasingIDs(t *testing.T) {
	db := openTempDB(t)
	ctx := context.Background()

	first, err := Insert(ctx, db, &model.ScanRecord{SSCC: "1", Status: "Ok"})
	require.NoError(t, err)
	second, err := Insert(ctx, db, &model.ScanRecord{SSCC: "1", Status: "Defect"})
	require.NoError(t, err)

	assert.NotZero(t, first)
	assert.Greater(t, second, first)
}

func TestFetchLatestByKeyReturnsMostRecent(t *testing.T) {
	db := openTempDB(t)
	ctx := context.Background()

	for _, row := range []*model.ScanRecord{
		{SSCC: "148102689000000010", Status: "Ok"},
		{SSCC: "999", Status: "Other"},
		{SSCC: "148102689000000010", Status: "Defect"},
	} {
		_, err := Insert(ctx, db, row)
		require.NoError(t, err)
	}

	got, err := FetchLatestByKey[model.ScanRecord](ctx, db, "SSCC", "148102689000000010")
	require.NoError(t, err)
	assert.Equal(t, "Defect", got.Status)
}

func TestFetchLatestByKeyNotFound(t *testing.T) {
	db := openTempDB(t)

	_, err := FetchLatestByKey[model.ScanRecord](context.Background(), db, "SSCC", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchRecentOrdersNewestFirst(t *testing.T) {
	db := openTempDB(t)
	ctx := context.Background()

	for _, sscc := range []string{"a", "b", "c"} {
		_, err := Insert(ctx, db, &model.CameraResRequest{SSCC: sscc})
		require.NoError(t, err)
	}

	rows, err := FetchRecent[model.CameraResRequest](ctx, db, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "c", rows[0].SSCC)
	assert.Equal(t, "b", rows[1].SSCC)

	_, err = FetchRecent[model.CameraResRequest](ctx, db, 0)
	assert.Error(t, err)
}

func TestFetchRecentRows(t *testing.T) {
	db := openTempDB(t)
	ctx := context.Background()

	_, err := Insert(ctx, db, &model.SetPalletResponse{SSCC: "x", Status: "Ok"})
	require.NoError(t, err)

	rows, err := FetchRecentRows(ctx, db, "set_pallet_responses", 10)
	require.NoError(t, err)
	typed, ok := rows.([]model.SetPalletResponse)
	require.True(t, ok)
	require.Len(t, typed, 1)
	assert.Equal(t, "x", typed[0].SSCC)

	_, err = FetchRecentRows(ctx, db, "request_logs", 10)
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestViewableTablesSorted(t *testing.T) {
	assert.Equal(t, []string{
		"get_camera_res_requests",
		"get_camera_res_responses",
		"palletes_scan",
		"set_pallet_requests",
		"set_pallet_responses",
	}, ViewableTables())
}
