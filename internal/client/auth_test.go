package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmelnikv/noteshare/internal/adapter"
	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/store"
	"github.com/vmelnikv/noteshare/models"
)

func newTestAuthService(server *fakeServerAdapter, sessions *fakeSessions) *authService {
	return newAuthService(server, sessions, logger.NewClientLogger("test"))
}

func TestLogin_PersistsSession(t *testing.T) {
	server := &fakeServerAdapter{
		loginFn: func(_ context.Context, user models.User) (models.User, error) {
			return models.User{UserID: 7, Username: user.Username}, nil
		},
	}
	server.SetToken("login-token")
	sessions := &fakeSessions{}

	got, err := newTestAuthService(server, sessions).Login(context.Background(), models.User{Username: "bob", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)

	session, err := sessions.GetSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), session.UserID)
	assert.Equal(t, "bob", session.Username)
	assert.Equal(t, "login-token", session.Token)
}

func TestLogin_BadCredentialsLeaveNoSession(t *testing.T) {
	server := &fakeServerAdapter{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, adapter.ErrUnauthorized
		},
	}
	sessions := &fakeSessions{}

	_, err := newTestAuthService(server, sessions).Login(context.Background(), models.User{Username: "bob", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	_, err = sessions.GetSession(context.Background())
	assert.ErrorIs(t, err, store.ErrNoSessionFound)
}

func TestRegister_PersistsSession(t *testing.T) {
	server := &fakeServerAdapter{
		registerFn: func(_ context.Context, user models.User) (models.User, error) {
			return models.User{UserID: 3, Username: user.Username, Email: user.Email}, nil
		},
	}
	server.SetToken("register-token")
	sessions := &fakeSessions{}

	got, err := newTestAuthService(server, sessions).Register(context.Background(), models.User{Username: "alice", Email: "alice@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.UserID)

	session, err := sessions.GetSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "register-token", session.Token)
}

func TestLogin_SessionSaveFailureDoesNotFailLogin(t *testing.T) {
	server := &fakeServerAdapter{
		loginFn: func(_ context.Context, user models.User) (models.User, error) {
			return models.User{UserID: 7, Username: user.Username}, nil
		},
	}
	sessions := &fakeSessions{saveErr: assert.AnError}

	_, err := newTestAuthService(server, sessions).Login(context.Background(), models.User{Username: "bob", Password: "secret"})

	require.NoError(t, err)
}

func TestRestoreSession_PrimesAdapterToken(t *testing.T) {
	server := &fakeServerAdapter{}
	sessions := &fakeSessions{}
	require.NoError(t, sessions.SaveSession(context.Background(), models.Session{UserID: 7, Username: "bob", Token: "stored-token"}))

	session, err := newTestAuthService(server, sessions).RestoreSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "bob", session.Username)
	assert.Equal(t, "stored-token", server.Token())
}

func TestRestoreSession_NoSession(t *testing.T) {
	_, err := newTestAuthService(&fakeServerAdapter{}, &fakeSessions{}).RestoreSession(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNoSessionFound)
}

func TestLogout_ClearsTokenAndSession(t *testing.T) {
	server := &fakeServerAdapter{}
	server.SetToken("stored-token")
	sessions := &fakeSessions{}
	require.NoError(t, sessions.SaveSession(context.Background(), models.Session{UserID: 7, Token: "stored-token"}))

	svc := newTestAuthService(server, sessions)
	require.NoError(t, svc.Logout(context.Background()))

	assert.Empty(t, server.Token())
	_, err := sessions.GetSession(context.Background())
	assert.ErrorIs(t, err, store.ErrNoSessionFound)

	// A second logout with nothing stored is not an error.
	require.NoError(t, svc.Logout(context.Background()))
}
