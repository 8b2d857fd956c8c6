package dto

// SendCodeRequest asks the verification provider to send a code to username
type SendCodeRequest struct {
	Username string `json:"username" binding:"required"`
}
