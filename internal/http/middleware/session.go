package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	SessionCookie = "sessionid"
	sessionsKey   = "sessions"
	viewerKey     = "viewer"
)

// Sessions issues and verifies the signed session cookie.
type Sessions struct {
	Secret []byte
	TTL    time.Duration
	Secure bool
	Now    func() time.Time
	// Lookup reloads the user named by a valid token so staff rights and
	// account removal take effect immediately. When nil the token's claims
	// are trusted as-is.
	Lookup func(ctx context.Context, id domain.ID) (domain.Viewer, error)
}

type sessionClaims struct {
	Username string `json:"username"`
	Staff    bool   `json:"staff"`
	jwt.RegisteredClaims
}

func (s *Sessions) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Sessions) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return 24 * time.Hour
}

// Issue signs a session token for user.
func (s *Sessions) Issue(user models.User) (string, error) {
	now := s.now()
	claims := sessionClaims{
		Username: user.Username,
		Staff:    user.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl())),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Parse verifies token and returns the user it was issued for.
func (s *Sessions) Parse(token string) (domain.Viewer, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Viewer{}, err
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return domain.Viewer{}, errors.New("session subject tidak valid")
	}
	return domain.Viewer{UserID: domain.ID(id), Username: claims.Username, Staff: claims.Staff}, nil
}

// Session loads the viewer from the session cookie, if any. Invalid or
// expired cookies are cleared and the request continues anonymously.
func Session(s *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionsKey, s)
		if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
			if v, err := s.Parse(token); err != nil {
				clearCookie(c, SessionCookie, s.Secure)
			} else if v, ok := s.refresh(c, v); ok {
				c.Set(viewerKey, v)
			}
		}
		c.Next()
	}
}

// refresh replaces the token's claims with the stored user. A user that no
// longer exists loses the session.
func (s *Sessions) refresh(c *gin.Context, v domain.Viewer) (domain.Viewer, bool) {
	if s.Lookup == nil {
		return v, true
	}
	fresh, err := s.Lookup(c.Request.Context(), v.UserID)
	if err != nil {
		if domain.IsNotFound(err) {
			clearCookie(c, SessionCookie, s.Secure)
		} else {
			utils.LogEvent(GetRequestID(c), "session", "lookup_failed", "user_id", v.UserID, "error", err)
		}
		return domain.Viewer{}, false
	}
	return fresh, true
}

// Login starts a session for user on this response.
func Login(c *gin.Context, user models.User) error {
	s, ok := c.Get(sessionsKey)
	sessions, _ := s.(*Sessions)
	if !ok || sessions == nil {
		return errors.New("session middleware tidak terpasang")
	}
	token, err := sessions.Issue(user)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(sessions.ttl().Seconds()), "/", "", sessions.Secure, true)
	c.Set(viewerKey, domain.Viewer{UserID: domain.ID(user.ID), Username: user.Username, Staff: user.IsStaff})
	return nil
}

// Logout ends the current session.
func Logout(c *gin.Context) {
	secure := false
	if s, ok := c.Get(sessionsKey); ok {
		if sessions, _ := s.(*Sessions); sessions != nil {
			secure = sessions.Secure
		}
	}
	clearCookie(c, SessionCookie, secure)
	c.Set(viewerKey, nil)
}

// CurrentUser returns the signed-in user for this request.
func CurrentUser(c *gin.Context) (domain.Viewer, bool) {
	if c == nil {
		return domain.Viewer{}, false
	}
	v, ok := c.Get(viewerKey)
	if !ok {
		return domain.Viewer{}, false
	}
	viewer, ok := v.(domain.Viewer)
	return viewer, ok
}

func clearCookie(c *gin.Context, name string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", secure, true)
}
