package domain

import (
	"errors"
)

var (
	MessageSuccessLogin = "login successful"
	MessageFailedLogin  = "login failed"

	ErrInvalidCredentials = errors.New("invalid admin credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenNotFound      = errors.New("token not found")
)

type (
	AdminLoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	AdminLoginResponse struct {
		Token string `json:"token"`
	}
)
