package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vmelnikv/noteshare/internal/config"
	"github.com/vmelnikv/noteshare/internal/crypto"
	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/metrics"
	"github.com/vmelnikv/noteshare/internal/store"
	"github.com/vmelnikv/noteshare/internal/utils"
	"github.com/vmelnikv/noteshare/internal/validators"
	"github.com/vmelnikv/noteshare/models"
)

// authService is the concrete implementation of [AuthService]. It handles
// user registration, credential verification, and the JWT token lifecycle,
// using a [store.UserRepository] for persistence and bcrypt for password
// hashing.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT. Tokens
	// whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, m *metrics.Metrics, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         crypto.NewPasswordHasher(),
		validator:      validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		metrics:        m,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that Username, Email, and Password are all non-empty, hashes
// the password with bcrypt, and delegates persistence to the repository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - [ErrInvalidDataProvided] if any required field is empty.
//   - A wrapped storage error if the repository call fails, e.g.
//     [store.ErrUserAlreadyExists] when the username or email is taken.
func (a *authService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user, validators.FieldEmail); err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, err
	}
	user.PasswordHash = hash
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.metrics.IncrementUsersRegistered()

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by username and compares the stored bcrypt hash
// against the supplied plain-text password.
//
// Returns the authenticated user record or:
//   - [ErrInvalidDataProvided] if Username or Password is empty.
//   - A wrapped storage error if the lookup fails, e.g.
//     [store.ErrNoUserWasFound].
//   - [ErrWrongPassword] if the password does not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, user.Username)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = a.hasher.Compare(foundUser.PasswordHash, user.Password); err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// [ErrTokenIsExpiredOrInvalid] so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
