package types

const (
	CameraIDPoint      = "ID1"
	StatusPalletResult = "PalletResult"
	ResultNotFound     = "Not found"
)

// GetCameraResRequest 查询相机识别结果
type GetCameraResRequest struct {
	SSCC string `json:"SSCC" binding:"required"`
}

type GetCameraResResponse struct {
	IDPoint     string `json:"IDPoint"`
	SSCC        string `json:"SSCC"`
	Status      string `json:"Status"`
	Probability string `json:"Probability"`
	Degree      string `json:"Degree"`
	Result      string `json:"Result"`
}
