package auth

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirepath/careers-backend-go/internal/domain/auth"
	"github.com/hirepath/careers-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users  map[string]user.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByGoogleID(_ context.Context, googleID string) (user.User, error) {
	for _, u := range f.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	f.users[u.ID] = u
	return nil
}

// fakeJWTService issues predictable token strings.
type fakeJWTService struct {
	refreshUserID string
	refreshJTI    string
	refreshExpiry time.Time
	decodeErr     error
}

func (f *fakeJWTService) GenerateAccessToken(userID string, _ string, _ user.Role) (string, int64, error) {
	return "access-" + userID, time.Now().Add(time.Hour).Unix(), nil
}

func (f *fakeJWTService) GenerateRefreshToken(userID string) (string, int64, error) {
	return "refresh-" + userID, time.Now().Add(24 * time.Hour).Unix(), nil
}

func (f *fakeJWTService) DecodeRefreshToken(_ string) (string, string, time.Time, error) {
	if f.decodeErr != nil {
		return "", "", time.Time{}, f.decodeErr
	}
	return f.refreshUserID, f.refreshJTI, f.refreshExpiry, nil
}

func (f *fakeJWTService) JWTAuth() *jwtauth.JWTAuth { return nil }

func (f *fakeJWTService) RefreshTokenCookie(_ string, _ int64) *http.Cookie { return nil }

func TestRegister_CreatesApplicant(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &fakeJWTService{}, nil, nil)

	resp, err := svc.Register(context.Background(), auth.RegisterRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, string(user.RoleApplicant), resp.User.Role)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)

	stored, err := repo.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.PasswordHash)
	assert.NotEqual(t, "password123", *stored.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &fakeJWTService{}, nil, nil)
	ctx := context.Background()

	req := auth.RegisterRequest{FullName: "Jane", Email: "jane@example.com", Password: "password123"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeJWTService{}, nil, nil)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		FullName: "Jane",
		Email:    "jane@example.com",
		Password: "short",
	})
	assert.Error(t, err)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &fakeJWTService{}, nil, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, auth.RegisterRequest{
		FullName: "Jane",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &fakeJWTService{}, nil, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, auth.RegisterRequest{
		FullName: "Jane",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "jane@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeJWTService{}, nil, nil)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &fakeJWTService{}, nil, nil)
	ctx := context.Background()

	resp, err := svc.Register(ctx, auth.RegisterRequest{
		FullName: "Jane",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	stored := repo.users[resp.User.ID]
	stored.IsActive = false
	repo.users[resp.User.ID] = stored

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "jane@example.com", Password: "password123"})
	assert.ErrorIs(t, err, user.ErrUserInactive)
}

func TestLogin_GoogleOnlyAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &fakeJWTService{}, nil, nil)
	ctx := context.Background()

	googleID := "g-123"
	_, err := repo.Create(ctx, user.User{
		Email:    "jane@example.com",
		GoogleID: &googleID,
		FullName: "Jane",
		Role:     user.RoleApplicant,
		IsActive: true,
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "jane@example.com", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh_ReissuesTokens(t *testing.T) {
	repo := newFakeUserRepo()
	created, err := repo.Create(context.Background(), user.User{
		Email:    "jane@example.com",
		FullName: "Jane",
		Role:     user.RoleEmployee,
		IsActive: true,
	})
	require.NoError(t, err)

	jwtSvc := &fakeJWTService{
		refreshUserID: created.ID,
		refreshJTI:    "jti-1",
		refreshExpiry: time.Now().Add(time.Hour),
	}
	svc := NewAuthService(repo, jwtSvc, nil, nil)

	tokens, err := svc.Refresh(context.Background(), "some-refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "access-"+created.ID, tokens.AccessToken)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	repo := newFakeUserRepo()
	jwtSvc := &fakeJWTService{
		refreshUserID: "user-1",
		refreshJTI:    "jti-1",
		refreshExpiry: time.Now().Add(-time.Minute),
	}
	svc := NewAuthService(repo, jwtSvc, nil, nil)

	_, err := svc.Refresh(context.Background(), "stale-token")
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestLoginWithGoogle_Disabled(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeJWTService{}, nil, nil)

	_, _, err := svc.LoginWithGoogle(context.Background(), "test-agent")
	assert.ErrorIs(t, err, auth.ErrOAuthDisabled)
}
