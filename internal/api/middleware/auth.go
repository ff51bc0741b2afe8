package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

const (
	// TokenCookie carries the console token for browser navigation.
	TokenCookie = "console_token"
	// LoginPath is where unauthenticated browsers are sent.
	LoginPath = "/login"
)

// SessionLoader resolves the server-side session a console token points to.
type SessionLoader interface {
	Session(ctx context.Context, sessionID string) (*domain.Session, error)
}

// Auth validates the console JWT, loads its session and injects it into both
// the echo context and the request context, where the backend client picks
// up the bearer token.
func Auth(jwtSecret string, sessions SessionLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return Unauthenticated(c, err.Error())
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return Unauthenticated(c, "invalid token")
			}

			sid, _ := claims["sid"].(string)
			if sid == "" {
				return Unauthenticated(c, "token missing session")
			}

			req := c.Request()
			sess, err := sessions.Session(req.Context(), sid)
			if errors.Is(err, domain.ErrSessionNotFound) {
				return Unauthenticated(c, "session expired")
			}
			if err != nil {
				return err
			}

			c.Set("session", sess)
			c.Set("role", string(sess.User.Role))
			c.Set("user_id", sess.User.ID)
			c.Set("company_id", sess.User.CompanyID)
			c.SetRequest(req.WithContext(domain.WithSession(req.Context(), sess)))

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		if cookie, err := c.Cookie(TokenCookie); err == nil && cookie.Value != "" {
			return cookie.Value, nil
		}
		return "", errors.New("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// Unauthenticated expires a stale token cookie and redirects browsers to the
// login screen, remembering where they were headed. API callers get a 401
// naming the same destination.
func Unauthenticated(c echo.Context, msg string) error {
	req := c.Request()
	if _, err := req.Cookie(TokenCookie); err == nil {
		c.SetCookie(&http.Cookie{
			Name:     TokenCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   c.Scheme() == "https",
			SameSite: http.SameSiteLaxMode,
		})
	}
	if strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMETextHTML) {
		return c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(req.URL.RequestURI()))
	}
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error":    msg,
		"redirect": LoginPath,
	})
}
