package dto

import (
	"github.com/bookmyfield/backend/internal/domains/user/repository"
	"github.com/bookmyfield/backend/pkg/helper"
)

type UserRegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type UserLoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
}

type UserProfileResponse struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	LastLogin    string `json:"last_login,omitempty"`
}

func (u *UserRegisterResponse) ToRegisterResponse(user repository.User) *UserRegisterResponse {
	return &UserRegisterResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

func (u *UserLoginResponse) ToLoginResponse(accessToken, refreshToken, role string) *UserLoginResponse {
	return &UserLoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         role,
	}
}

func (u UserProfileResponse) ToProfileResponse(user repository.User) UserProfileResponse {
	return UserProfileResponse{
		Username:     user.Username,
		Email:        user.Email,
		MobileNumber: user.MobileNumber,
		FullName:     user.FullName,
		Role:         user.Role,
		LastLogin:    helper.TimestampFromPg(user.LastLogin),
	}
}
