package types

import "time"

type SendOtpRequest struct {
	Email string `json:"email" binding:"required"`
}

type VerifyOtpRequest struct {
	Code string `json:"code" binding:"required"`
}

type VerifyOtpResponse struct {
	User *UserInfo `json:"user"`
}

type SessionExpiryResponse struct {
	UserID      int64     `json:"user_id"`
	ExpiresAt   time.Time `json:"expires_at"`
	IsValidAuth bool      `json:"is_valid_auth"`
}
