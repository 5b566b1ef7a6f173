package model

// Row 自增主键的表行
type Row interface {
	TableName() string
	RowID() uint
}

// All 返回服务启动时需要建表的全部模型
func All() []interface{} {
	return []interface{}{
		&RequestLog{},
		&SetPalletRequest{},
		&SetPalletResponse{},
		&ScanRecord{},
		&CameraResRequest{},
		&CameraResResponse{},
	}
}
