package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/baseafricadao/catalog/internal/config"
	"github.com/gin-gonic/gin"
)

func newContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func TestCookieNameFromConfig(t *testing.T) {
	m := NewManager(config.Config{AuthCookieName: "_catalog_sid"})
	if m.CookieName() != "_catalog_sid" {
		t.Fatalf("expected configured cookie name, got %q", m.CookieName())
	}

	m = NewManager(config.Config{AuthCookieName: "  "})
	if m.CookieName() != DefaultCookieName {
		t.Fatalf("blank config must fall back to %q, got %q", DefaultCookieName, m.CookieName())
	}
}

func TestSetAndReadToken(t *testing.T) {
	m := NewManager(config.Config{AuthCookieName: "_catalog_sid"})

	c, rec := newContext(t)
	m.Set(c, "raw-token", time.Now().Add(time.Hour))

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "_catalog_sid" {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be httpOnly")
	}
	if cookie.Path != "/" {
		t.Fatalf("expected path /, got %q", cookie.Path)
	}

	c, _ = newContext(t)
	c.Request.AddCookie(&http.Cookie{Name: "_catalog_sid", Value: "raw-token"})
	token, ok := m.ReadToken(c)
	if !ok || token != "raw-token" {
		t.Fatalf("expected token round trip, got %q ok=%v", token, ok)
	}
}

func TestReadTokenMissingOrBlank(t *testing.T) {
	m := NewManager(config.Config{})

	c, _ := newContext(t)
	if _, ok := m.ReadToken(c); ok {
		t.Fatal("missing cookie must not yield a token")
	}

	c, _ = newContext(t)
	c.Request.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "   "})
	if _, ok := m.ReadToken(c); ok {
		t.Fatal("blank cookie must not yield a token")
	}
}

func TestClearExpiresCookie(t *testing.T) {
	m := NewManager(config.Config{})

	c, rec := newContext(t)
	m.Clear(c)

	var cleared bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == DefaultCookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("clear must expire the session cookie")
	}
}
