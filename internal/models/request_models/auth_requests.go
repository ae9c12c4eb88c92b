package request_models

type LoginRequest struct {
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	ProfilePictureURL string `json:"profilePictureUrl"`
}
