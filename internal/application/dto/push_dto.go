package dto

// RegisterDeviceRequest body for POST /api/push/register.
type RegisterDeviceRequest struct {
	Token string `json:"token"`
}
