package model

import "time"

// RequestLog HTTP请求日志，每次调用一行
type RequestLog struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Method     string    `json:"method" gorm:"size:16;not null"`
	Path       string    `json:"path" gorm:"not null"`
	StatusCode int       `json:"status_code" gorm:"not null"`
	DurationMS float64   `json:"duration_ms" gorm:"column:duration_ms;not null"`
	ClientIP   *string   `json:"client_ip"`
	UserAgent  *string   `json:"user_agent"`
	RequestID  string    `json:"request_id" gorm:"size:64"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (RequestLog) TableName() string {
	return "request_logs"
}

func (r *RequestLog) RowID() uint { return r.ID }
