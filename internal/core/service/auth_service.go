package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

// LoginOutcome is the structured login result. Credential problems are
// reported through Success/Message, never as an error.
type LoginOutcome struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *domain.User `json:"user,omitempty"`

	Session *domain.Session `json:"-"`
}

// AuthService implements login, logout and session lookup.
type AuthService struct {
	backend       ports.AuthGateway
	sessions      ports.SessionStore
	notifications ports.NotificationStore
	jwtSecret     string
	tokenTTL      time.Duration
	log           zerolog.Logger
}

func NewAuthService(
	backend ports.AuthGateway,
	sessions ports.SessionStore,
	notifications ports.NotificationStore,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		backend:       backend,
		sessions:      sessions,
		notifications: notifications,
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
		log:           log,
	}
}

// Login checks the credentials against the backend and, on success, opens a
// console session holding the backend token. The returned error is only set
// for infrastructure failures (session store, token signing).
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginOutcome, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return &LoginOutcome{Message: "Email and password are required"}, nil
	}

	res, err := s.backend.Login(ctx, email, password)
	if err != nil {
		s.log.Info().Err(err).Str("email", email).Msg("login rejected")
		return &LoginOutcome{Message: loginFailureMessage(err)}, nil
	}
	if !res.User.Role.Valid() {
		s.log.Warn().Str("email", email).Str("role", string(res.User.Role)).Msg("login with unsupported role")
		return &LoginOutcome{Message: "Your account role is not supported by this console"}, nil
	}

	now := time.Now().UTC()
	sess := &domain.Session{
		ID:        uuid.NewString(),
		Token:     res.Token,
		User:      res.User,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenTTL),
	}
	if err := s.sessions.Save(ctx, sess, s.tokenTTL); err != nil {
		return nil, err
	}

	token, err := s.generateToken(sess)
	if err != nil {
		_ = s.sessions.Delete(ctx, sess.ID)
		return nil, err
	}

	s.log.Info().Str("user_id", sess.User.ID).Str("role", string(sess.User.Role)).Msg("login succeeded")

	user := sess.User
	return &LoginOutcome{Success: true, Token: token, User: &user, Session: sess}, nil
}

// loginFailureMessage picks the text shown on the login screen.
func loginFailureMessage(err error) string {
	var apiErr *domain.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Message != "" &&
		(errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrBadRequest) || errors.Is(err, domain.ErrValidation)):
		return apiErr.Message
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrNotFound):
		return "Invalid email or password"
	}
	return domain.UserMessage(err)
}

// Logout clears the session unconditionally. The backend is not told.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	if err := s.notifications.Clear(ctx, sessionID); err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to clear notifications on logout")
	}
	return nil
}

// Invalidate is the target of the backend client's global 401 hook.
func (s *AuthService) Invalidate(ctx context.Context, sess *domain.Session) {
	// The request context may already be cancelled; the cleanup must still run.
	ctx = context.WithoutCancel(ctx)
	if err := s.Logout(ctx, sess.ID); err != nil {
		s.log.Error().Err(err).Str("session_id", sess.ID).Msg("failed to clear rejected session")
		return
	}
	s.log.Info().Str("session_id", sess.ID).Str("user_id", sess.User.ID).Msg("session cleared after backend 401")
}

// Session loads an open session.
func (s *AuthService) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

func (s *AuthService) generateToken(sess *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":        sess.ID,
		"user_id":    sess.User.ID,
		"role":       string(sess.User.Role),
		"company_id": sess.User.CompanyID,
		"exp":        sess.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
