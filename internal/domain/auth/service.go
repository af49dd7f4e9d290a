package auth

import "context"

// AuthService issues tokens and describes the authenticated caller
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Me(ctx context.Context) (MeResponse, error)
}
