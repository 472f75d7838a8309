package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/vmelnikv/noteshare/internal/config"
	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/store"
	"github.com/vmelnikv/noteshare/internal/store/mocks"
	"github.com/vmelnikv/noteshare/models"
)

var testAuthConfig = config.Auth{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "noteshare",
	TokenDuration: time.Hour,
}

func newTestAuthService(t *testing.T) (AuthService, *mocks.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(userRepo, testAuthConfig, nil, logger.Nop())
	return svc, userRepo
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	var stored models.User
	userRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			stored = u
			u.UserID = 1
			return u, nil
		},
	)

	registered, err := svc.Register(ctx, models.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)

	// the plain-text password never reaches the repository
	assert.Empty(t, stored.Password)
	require.NotEmpty(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		user models.User
	}{
		{"no username", models.User{Email: "a@b.c", Password: "p"}},
		{"no email", models.User{Username: "alice", Password: "p"}},
		{"no password", models.User{Username: "alice", Email: "a@b.c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.user)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Register_DuplicateUser(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.Register(ctx, models.User{Username: "alice", Email: "a@b.c", Password: "p"})
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{
		UserID:       1,
		Username:     "alice",
		PasswordHash: string(hash),
	}, nil)

	found, err := svc.Login(ctx, models.User{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{
		UserID:       1,
		Username:     "alice",
		PasswordHash: string(hash),
	}, nil)

	_, err = svc.Login(ctx, models.User{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.User{Username: "ghost", Password: "p"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	otherCfg := testAuthConfig
	otherCfg.TokenSignKey = "another-key"
	other := NewAuthService(userRepo, otherCfg, nil, logger.Nop())

	token, err := other.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	svc := NewAuthService(userRepo, testAuthConfig, nil, logger.Nop())
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	shortCfg := testAuthConfig
	shortCfg.TokenDuration = -time.Minute
	expired := NewAuthService(userRepo, shortCfg, nil, logger.Nop())

	token, err := expired.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = expired.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
