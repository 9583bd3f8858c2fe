package dto

// ProfileReq represents the request body for the /profile endpoint.
type ProfileReq struct {
	Email string `json:"email" binding:"required,email"`
}
