package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Signup(ctx context.Context, req SignupRequest) (SignupResponse, error)
}
