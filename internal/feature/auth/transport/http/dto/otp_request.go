package dto

// SendOTPReq represents the request body for the /auth/send-otp endpoint.
type SendOTPReq struct {
	Phone string `json:"phone" binding:"required"`
}

// VerifyOTPReq represents the request body for the /auth/verify-otp endpoint.
type VerifyOTPReq struct {
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}
