package usecase

import (
	authdomain "github.com/whoisanshul/insight-dump/internal/auth/domain"
	authdto "github.com/whoisanshul/insight-dump/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(tokenString string) (*authdomain.User, error)
	UpdateProfile(userID, name string) (*authdomain.User, error)
}
