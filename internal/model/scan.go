package model

import "time"

// ScanRecord 托盘扫描记录，由 addpallet 工具或外部系统写入
type ScanRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	SSCC      string    `json:"SSCC" gorm:"column:SSCC;not null;index"`
	Status    string    `json:"Status" gorm:"column:Status;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (ScanRecord) TableName() string {
	return "palletes_scan"
}

func (r *ScanRecord) RowID() uint { return r.ID }
