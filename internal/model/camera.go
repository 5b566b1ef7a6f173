package model

import "time"

// CameraResRequest getcamerares 请求记录
type CameraResRequest struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	SSCC      string    `json:"SSCC" gorm:"column:SSCC;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (CameraResRequest) TableName() string {
	return "get_camera_res_requests"
}

func (r *CameraResRequest) RowID() uint { return r.ID }

// CameraResResponse getcamerares 响应记录
type CameraResResponse struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	IDPoint     string    `json:"IDPoint" gorm:"column:IDPoint;not null"`
	SSCC        string    `json:"SSCC" gorm:"column:SSCC;not null"`
	Status      string    `json:"Status" gorm:"column:Status;not null"`
	Probability string    `json:"Probability" gorm:"column:Probability;not null"`
	Degree      string    `json:"Degree" gorm:"column:Degree;not null"`
	Result      string    `json:"Result" gorm:"column:Result;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (CameraResResponse) TableName() string {
	return "get_camera_res_responses"
}

func (r *CameraResResponse) RowID() uint { return r.ID }
