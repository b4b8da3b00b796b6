package dto

// LoginReq represents the request body for the /auth/login endpoint.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResp carries the signed session token returned on a successful login.
type TokenResp struct {
	Token string `json:"token"`
}
