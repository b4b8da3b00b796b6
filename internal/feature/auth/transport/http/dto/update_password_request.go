package dto

// UpdatePasswordReq represents the request body for the /auth/password
// endpoint. Both passwords must meet the minimum length.
type UpdatePasswordReq struct {
	OldPassword string `json:"oldPassword" binding:"required,min=8"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
