package types

const (
	MessagePalletOnID = "PalletOnID"
	StatusOk          = "Ok"
)

// SetPalletRequest 托盘到达识别点的请求
type SetPalletRequest struct {
	SSCC    string   `json:"SSCC" binding:"required"`
	IDPoint string   `json:"IDPoint" binding:"required"`
	Message string   `json:"Message" binding:"required,eq=PalletOnID"`
	Weight  *float64 `json:"Weight" binding:"required"`
}

type SetPalletResponse struct {
	SSCC   string `json:"SSCC"`
	Status string `json:"Status"`
}
