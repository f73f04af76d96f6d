package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gamestorehq/gamestore/internal/dependencies/clock"
	"github.com/gamestorehq/gamestore/internal/dependencies/random"
	"github.com/gamestorehq/gamestore/internal/model"
	"github.com/gamestorehq/gamestore/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient role")
)

// DevSecret is the development fallback for the password-hashing secret.
// Running with it in production must be flagged at startup, never accepted
// silently.
const DevSecret = "dev-secret-key"

// bearerPrefix is matched case-insensitively per the bearer scheme
const bearerPrefix = "bearer "

// tokenBytes is the entropy of an issued session token; hex-encoding it
// yields the 64-character bearer tokens clients present.
const tokenBytes = 32

// Session is an issued authentication grant: the opaque token plus the
// user it proves.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      model.User
}

// Service implements the authentication core: password hashing, session
// issuance, token validation and the role gate. Sessions are persisted in
// storage and every validation is a fresh store lookup; there is no
// in-process session cache.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	secret     string
	sessionTTL time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	// Secret is the process-wide password-hashing secret
	Secret string
	// SessionTTL is the absolute lifetime of issued sessions
	SessionTTL time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		Secret:     DevSecret,
		SessionTTL: 7 * 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, cfg Config, logger *slog.Logger) *Service {
	if cfg.Secret == "" {
		cfg.Secret = DefaultConfig().Secret
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = DefaultConfig().SessionTTL
	}
	return &Service{
		storage:    storage,
		clock:      clock,
		random:     random,
		logger:     logger,
		secret:     cfg.Secret,
		sessionTTL: cfg.SessionTTL,
	}
}

// Register creates a user account and issues a session.
// Email is lowercased before storage; uniqueness is enforced by the store.
func (s *Service) Register(ctx context.Context, name, email, password string) (*Session, error) {
	user := &model.User{
		ID:           model.NewID(),
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: HashPassword(s.secret, password),
		Role:         model.RoleUser,
		IsActive:     true,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueSession(ctx, user)
}

// Login authenticates email/password credentials and issues a session.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.storage.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash != HashPassword(s.secret, password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(ctx, user)
}

// Authenticate resolves an Authorization header value to a user identity.
//
// It returns (nil, nil), meaning anonymous, for a missing header, a non-bearer
// scheme, an unknown token, an expired session, or a session whose user no
// longer exists. Anonymity is not an error: some endpoints accept it and
// the gate decides whether identity is required. The returned user has its
// password hash stripped.
func (s *Service) Authenticate(ctx context.Context, authorization string) (*model.User, error) {
	token := extractBearerToken(authorization)
	if token == "" {
		return nil, nil
	}

	session, err := s.storage.GetSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	// A session is valid up to and including its expiry instant
	if s.clock.Now().Unix() > session.ExpiresAt {
		return nil, nil
	}

	user, err := s.storage.GetUser(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// RequireUser is the identity gate: anonymous callers are rejected
func (s *Service) RequireUser(user *model.User) (*model.User, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// RequireRole is the role gate. It fails closed: no identity is
// ErrUnauthorized, a wrong role is ErrForbidden.
func (s *Service) RequireRole(user *model.User, role model.Role) (*model.User, error) {
	user, err := s.RequireUser(user)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, ErrForbidden
	}
	return user, nil
}

// CleanExpiredSessions removes sessions past their expiry from the store
func (s *Service) CleanExpiredSessions(ctx context.Context) error {
	return s.storage.DeleteExpiredSessions(ctx, s.clock.Now().Unix())
}

// RunReaper periodically cleans expired sessions until ctx is cancelled
func (s *Service) RunReaper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.CleanExpiredSessions(ctx); err != nil {
				s.logger.Warn("session reaper sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}

// issueSession creates and persists a session for a user
func (s *Service) issueSession(ctx context.Context, user *model.User) (*Session, error) {
	token, err := s.random.Token(tokenBytes)
	if err != nil {
		return nil, err
	}

	expiresAt := s.clock.Now().Add(s.sessionTTL)

	session := &model.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: expiresAt.Unix(),
	}

	if err := s.storage.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
	}, nil
}

// extractBearerToken pulls the token out of an Authorization header value.
// The scheme prefix is matched case-insensitively; anything else yields ""
// and the request proceeds as anonymous.
func extractBearerToken(authorization string) string {
	if len(authorization) <= len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(authorization[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return authorization[len(bearerPrefix):]
}
