package auth

import "context"

type AuthService interface {
	// Register creates an applicant account. Back-office and employee
	// accounts are provisioned administratively.
	Register(ctx context.Context, req RegisterRequest) (LoginResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	// LoginWithGoogle returns the consent-screen redirect URL and the state
	// the handler should pin in a cookie for callback verification.
	LoginWithGoogle(ctx context.Context, userAgent string) (redirectURL, state string, err error)
	// OAuthCallbackGoogle completes the code exchange and signs the user in,
	// creating an applicant account on first sign-in.
	OAuthCallbackGoogle(ctx context.Context, code string) (LoginResponse, error)
}
