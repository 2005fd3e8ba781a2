package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testSessions(now time.Time) *Sessions {
	return &Sessions{Secret: []byte("test-secret"), TTL: time.Hour, Now: func() time.Time { return now }}
}

func TestSessionIssueAndParse(t *testing.T) {
	s := testSessions(time.Now())
	token, err := s.Issue(models.User{ID: 7, Username: "ann", IsStaff: true})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}
	v, err := s.Parse(token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if v != (domain.Viewer{UserID: 7, Username: "ann", Staff: true}) {
		t.Fatalf("unexpected viewer %+v", v)
	}
}

func TestSessionRejectsExpiredAndForeignTokens(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	old, _ := testSessions(issued).Issue(models.User{ID: 7, Username: "ann"})
	if _, err := testSessions(time.Now()).Parse(old); err == nil {
		t.Fatalf("expired token accepted")
	}

	other := &Sessions{Secret: []byte("another-secret")}
	forged, _ := other.Issue(models.User{ID: 1, Username: "admin", IsStaff: true})
	if _, err := testSessions(time.Now()).Parse(forged); err == nil {
		t.Fatalf("token signed with another secret accepted")
	}
}

func TestSessionMiddlewareClearsBadCookie(t *testing.T) {
	r := gin.New()
	r.Use(Session(testSessions(time.Now())))
	r.GET("/", func(c *gin.Context) {
		if _, ok := CurrentUser(c); ok {
			t.Errorf("bad cookie produced a user")
		}
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	cleared := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == SessionCookie && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected session cookie to be cleared")
	}
}

func TestLoginSetsHttpOnlyCookie(t *testing.T) {
	r := gin.New()
	r.Use(Session(testSessions(time.Now())))
	r.POST("/login/", func(c *gin.Context) {
		if err := Login(c, models.User{ID: 3, Username: "bob"}); err != nil {
			t.Errorf("login error: %v", err)
		}
		v, ok := CurrentUser(c)
		if !ok || v.UserID != 3 {
			t.Errorf("viewer not set after login: %+v", v)
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login/", nil))

	var session *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == SessionCookie {
			session = ck
		}
	}
	if session == nil || !session.HttpOnly || session.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected session cookie %+v", session)
	}
}
