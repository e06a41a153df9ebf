package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hirepath/careers-backend-go/internal/domain/auth"
	"github.com/hirepath/careers-backend-go/internal/domain/user"
	"github.com/hirepath/careers-backend-go/internal/pkg/jwt"
	"github.com/hirepath/careers-backend-go/internal/pkg/oauth"
	"github.com/hirepath/careers-backend-go/internal/pkg/redis"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
	redisClient   *redis.Client
}

// NewAuthService wires the auth flows. googleService may be nil when Google
// sign-in is not configured; redisClient may be nil, which disables the
// refresh-token blacklist (logout still clears the cookie client-side).
func NewAuthService(
	userRepository user.UserRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
	redisClient *redis.Client,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		jwtService:     jwtService,
		googleService:  googleService,
		redisClient:    redisClient,
	}
}

// Register implements auth.AuthService. Self-registration always creates an
// applicant; employee and back-office accounts are provisioned by admins.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	created, err := a.UserRepository.Create(ctx, user.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: &hashStr,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         user.RoleApplicant,
		IsActive:     true,
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return a.buildLoginResponse(created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	found, err := a.UserRepository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !found.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	// Google-only accounts have no password hash.
	if found.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*found.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.buildLoginResponse(found)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, jti, expiresAt, err := a.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if time.Now().After(expiresAt) {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	if a.redisClient != nil {
		revoked, err := a.redisClient.IsBlacklisted(ctx, jti)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to check token blacklist: %w", err)
		}
		if revoked {
			return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
		}
	}

	found, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by ID: %w", err)
	}
	if !found.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	// Rotate: revoke the presented token before issuing a new pair.
	if a.redisClient != nil {
		if err := a.redisClient.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
		}
	}

	return a.buildTokenResponse(found)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	_, jti, expiresAt, err := a.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		// An unparseable token has nothing to revoke.
		return nil
	}

	if a.redisClient != nil && time.Now().Before(expiresAt) {
		if err := a.redisClient.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
	}

	return nil
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(_ context.Context, userAgent string) (string, string, error) {
	if a.googleService == nil {
		return "", "", auth.ErrOAuthDisabled
	}

	state := a.googleService.GenerateState(userAgent)
	if state == "" {
		return "", "", fmt.Errorf("failed to generate oauth state")
	}

	return a.googleService.RedirectURL(state), state, nil
}

// OAuthCallbackGoogle implements auth.AuthService.
func (a *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, code string) (auth.LoginResponse, error) {
	if a.googleService == nil {
		return auth.LoginResponse{}, auth.ErrOAuthDisabled
	}

	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to fetch google user info: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	found, err := a.UserRepository.GetByGoogleID(ctx, info.GoogleID)
	if err == nil {
		if !found.IsActive {
			return auth.LoginResponse{}, user.ErrUserInactive
		}
		return a.buildLoginResponse(found)
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by google ID: %w", err)
	}

	// Link to an existing password account with the same email, otherwise
	// create a fresh applicant.
	existing, err := a.UserRepository.GetByEmail(ctx, strings.ToLower(info.Email))
	if err == nil {
		existing.GoogleID = &info.GoogleID
		if updateErr := a.UserRepository.Update(ctx, existing); updateErr != nil {
			return auth.LoginResponse{}, fmt.Errorf("failed to link google account: %w", updateErr)
		}
		if !existing.IsActive {
			return auth.LoginResponse{}, user.ErrUserInactive
		}
		return a.buildLoginResponse(existing)
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Email:    strings.ToLower(info.Email),
		GoogleID: &info.GoogleID,
		FullName: info.Name,
		Role:     user.RoleApplicant,
		IsActive: true,
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return a.buildLoginResponse(created)
}

func (a *AuthServiceImpl) buildTokenResponse(u user.User) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}

func (a *AuthServiceImpl) buildLoginResponse(u user.User) (auth.LoginResponse, error) {
	tokens, err := a.buildTokenResponse(u)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		User: auth.UserResponse{
			ID:       u.ID,
			Email:    u.Email,
			FullName: u.FullName,
			Role:     string(u.Role),
		},
		Token: tokens,
	}, nil
}
