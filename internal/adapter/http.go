package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/vmelnikv/noteshare/internal/config"
	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/utils"
	"github.com/vmelnikv/noteshare/models"
)

// authPayload mirrors the register/login response body.
type authPayload struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.ServerURL and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/user/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var payload authPayload

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&payload).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return payload.User, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns the
// server-side user record.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var payload authPayload

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&payload).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return payload.User, nil
}

// CreateNote implements [ServerAdapter]. It POSTs the note body to
// POST /api/notes and returns the stored note. Requires a valid bearer token.
func (h *httpServerAdapter) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&note).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// GetNote implements [ServerAdapter]. It GETs /api/notes/{noteID}. Requires a
// valid bearer token.
func (h *httpServerAdapter) GetNote(ctx context.Context, noteID int64) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetResult(&note).
		Get(notePath(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// UpdateNote implements [ServerAdapter]. It PATCHes the partial update to
// PATCH /api/notes/{noteID} and returns the updated note. Requires a valid
// bearer token.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID int64, update models.NoteUpdate) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&note).
		Patch(notePath(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// DeleteNote implements [ServerAdapter]. It sends DELETE /api/notes/{noteID}.
// Requires a valid bearer token.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID int64) error {
	resp, err := h.authedRequest(ctx).Delete(notePath(noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListCreated implements [ServerAdapter]. It GETs one page of owned notes
// from GET /api/notes/created. Requires a valid bearer token.
func (h *httpServerAdapter) ListCreated(ctx context.Context, page int) (models.Page[models.Note], error) {
	return h.listNotes(ctx, "/api/notes/created", page)
}

// ListShared implements [ServerAdapter]. It GETs one page of notes shared
// with the user from GET /api/notes/shared. Requires a valid bearer token.
func (h *httpServerAdapter) ListShared(ctx context.Context, page int) (models.Page[models.Note], error) {
	return h.listNotes(ctx, "/api/notes/shared", page)
}

func (h *httpServerAdapter) listNotes(ctx context.Context, path string, page int) (models.Page[models.Note], error) {
	var result models.Page[models.Note]

	resp, err := h.authedRequest(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetResult(&result).
		Get(path)
	if err != nil {
		return models.Page[models.Note]{}, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page[models.Note]{}, err
	}

	return result, nil
}

// ShareNote implements [ServerAdapter]. It POSTs the recipient e-mail to
// POST /api/notes/{noteID}/share and returns the created grant. Requires a
// valid bearer token.
func (h *httpServerAdapter) ShareNote(ctx context.Context, noteID int64, recipientEmail string) (models.SharedNote, error) {
	var share models.SharedNote

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": recipientEmail}).
		SetResult(&share).
		Post(notePath(noteID) + "/share")
	if err != nil {
		return models.SharedNote{}, fmt.Errorf("share note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SharedNote{}, err
	}

	return share, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func notePath(noteID int64) string {
	return "/api/notes/" + strconv.FormatInt(noteID, 10)
}
