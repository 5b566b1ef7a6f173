package model

import "time"

// SetPalletRequest setpallet 请求记录
type SetPalletRequest struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	SSCC      string    `json:"SSCC" gorm:"column:SSCC;not null"`
	IDPoint   string    `json:"IDPoint" gorm:"column:IDPoint;not null"`
	Message   string    `json:"Message" gorm:"column:Message;not null"`
	Weight    float64   `json:"Weight" gorm:"column:Weight;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (SetPalletRequest) TableName() string {
	return "set_pallet_requests"
}

func (r *SetPalletRequest) RowID() uint { return r.ID }

// SetPalletResponse setpallet 响应记录
type SetPalletResponse struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	SSCC      string    `json:"SSCC" gorm:"column:SSCC;not null"`
	Status    string    `json:"Status" gorm:"column:Status;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (SetPalletResponse) TableName() string {
	return "set_pallet_responses"
}

func (r *SetPalletResponse) RowID() uint { return r.ID }
