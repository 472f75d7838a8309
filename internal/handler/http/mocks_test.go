package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/service"
	"github.com/vmelnikv/noteshare/internal/utils"
	"github.com/vmelnikv/noteshare/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	return m.registerFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockNoteService implements service.NoteService for unit tests.
type mockNoteService struct {
	createFn     func(ctx context.Context, ownerID int64, input models.NoteInput) (models.Note, error)
	getFn        func(ctx context.Context, requesterID, noteID int64) (models.Note, error)
	updateFn     func(ctx context.Context, requesterID, noteID int64, update models.NoteUpdate) (models.Note, error)
	deleteFn     func(ctx context.Context, requesterID, noteID int64) error
	listOwnedFn  func(ctx context.Context, ownerID int64, page int) (models.Page[models.Note], error)
	listSharedFn func(ctx context.Context, recipientID int64, page int) (models.Page[models.Note], error)
}

func (m *mockNoteService) Create(ctx context.Context, ownerID int64, input models.NoteInput) (models.Note, error) {
	return m.createFn(ctx, ownerID, input)
}

func (m *mockNoteService) Get(ctx context.Context, requesterID, noteID int64) (models.Note, error) {
	return m.getFn(ctx, requesterID, noteID)
}

func (m *mockNoteService) Update(ctx context.Context, requesterID, noteID int64, update models.NoteUpdate) (models.Note, error) {
	return m.updateFn(ctx, requesterID, noteID, update)
}

func (m *mockNoteService) Delete(ctx context.Context, requesterID, noteID int64) error {
	return m.deleteFn(ctx, requesterID, noteID)
}

func (m *mockNoteService) ListOwned(ctx context.Context, ownerID int64, page int) (models.Page[models.Note], error) {
	return m.listOwnedFn(ctx, ownerID, page)
}

func (m *mockNoteService) ListShared(ctx context.Context, recipientID int64, page int) (models.Page[models.Note], error) {
	return m.listSharedFn(ctx, recipientID, page)
}

// mockShareService implements service.ShareService for unit tests.
type mockShareService struct {
	shareFn func(ctx context.Context, ownerID, noteID int64, recipientEmail string) (models.SharedNote, error)
}

func (m *mockShareService) Share(ctx context.Context, ownerID, noteID int64, recipientEmail string) (models.SharedNote, error) {
	return m.shareFn(ctx, ownerID, noteID, recipientEmail)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given mocks. Nil mocks are wired
// as empty stubs so tests only fill in what they exercise.
func newTestHandler(t *testing.T, auth service.AuthService, notes service.NoteService, shares service.ShareService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{}
	}
	if notes == nil {
		notes = &mockNoteService{}
	}
	if shares == nil {
		shares = &mockShareService{}
	}

	svcs := &service.Services{
		AuthService:  auth,
		NoteService:  notes,
		ShareService: shares,
	}
	return NewHandler(svcs, nil, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// authedContext returns a context carrying userID, as the auth middleware
// would have set it.
func authedContext(userID int64) context.Context {
	return context.WithValue(context.Background(), utils.UserIDCtxKey, userID)
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	Username: "alice",
	Email:    "alice@example.com",
	Password: "s3cret",
}
