package service

import (
	"github.com/chanakya-dev/campustore/internal/server"
	"github.com/clerk/clerk-sdk-go/v2"
)

// AuthService initializes the Clerk SDK with the secret key so the
// auth middleware can validate session tokens.
type AuthService struct {
	server *server.Server
}

// NewAuthService sets the global Clerk key and returns the service.
func NewAuthService(s *server.Server) *AuthService {
	clerk.SetKey(s.Config.Auth.SecretKey)
	return &AuthService{
		server: s,
	}
}
