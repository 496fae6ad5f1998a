package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finitefield.org/dashpro-admin/internal/admin/preferences"
)

type fixedClock struct {
	current time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.current
}

func newTestManager(t *testing.T) (*Manager, *fixedClock) {
	t.Helper()

	hashKey := []byte("12345678901234567890123456789012")
	blockKey := []byte("abcdefghijklmnopqrstuv0123456789")
	clock := &fixedClock{current: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	httpOnly := true
	mgr, err := NewManager(Config{
		CookieName:     "test_session",
		HashKey:        hashKey,
		BlockKey:       blockKey,
		CookiePath:     "/",
		CookieHTTPOnly: &httpOnly,
		IdleTimeout:    10 * time.Minute,
		Lifetime:       2 * time.Hour,
		Now:            clock.Now,
	})
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	return mgr, clock
}

func TestNewManagerRequiresHashKey(t *testing.T) {
	if _, err := NewManager(Config{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestManager_PreferencesRoundTrip(t *testing.T) {
	mgr, clock := newTestManager(t)
	ctx := context.Background()

	sess, err := mgr.Load(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if sess.ID() == "" {
		t.Fatalf("expected session ID")
	}
	if !sess.CreatedAt().Equal(clock.current) {
		t.Fatalf("unexpected CreatedAt: %v", sess.CreatedAt())
	}
	if _, err := sess.Get(ctx, preferences.KeyLanguage); !errors.Is(err, preferences.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	sess.Remember(ctx, preferences.Preferences{Language: "id", PrimaryColor: "#E53E3E"})
	if !sess.Dirty() {
		t.Fatalf("expected dirty session")
	}

	rec := httptest.NewRecorder()
	if err := mgr.Save(rec, sess); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	cookie := findCookie(rec.Result().Cookies(), "test_session")
	if cookie == nil {
		t.Fatalf("expected session cookie to be set")
	}

	clock.current = clock.current.Add(5 * time.Minute)
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)
	loaded, err := mgr.Load(req)
	if err != nil {
		t.Fatalf("Load existing error: %v", err)
	}
	if loaded.ID() != sess.ID() {
		t.Fatalf("expected same session id")
	}

	prefs, err := preferences.Open(ctx, loaded.Store(ctx))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if got := prefs.Snapshot(); got.Language != "id" || got.PrimaryColor != "#E53E3E" {
		t.Fatalf("unexpected preferences %+v", got)
	}
}

func TestSession_StoreIsDetached(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()
	sess := mgr.New()
	_ = sess.Set(ctx, preferences.KeyLanguage, "en")

	store := sess.Store(ctx)
	_ = store.Set(ctx, preferences.KeyLanguage, "id")

	if v, _ := sess.Get(ctx, preferences.KeyLanguage); v != "en" {
		t.Fatalf("session changed through detached store: %q", v)
	}
}

func TestManager_TamperedCookieStartsFresh(t *testing.T) {
	mgr, _ := newTestManager(t)
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "test_session", Value: "garbage"})

	sess, err := mgr.Load(req)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !sess.Dirty() {
		t.Fatalf("expected a fresh session")
	}
}

func TestManager_IdleTimeout(t *testing.T) {
	mgr, clock := newTestManager(t)
	sess, err := mgr.Load(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	rec := httptest.NewRecorder()
	if err := mgr.Save(rec, sess); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	cookie := findCookie(rec.Result().Cookies(), "test_session")

	clock.current = clock.current.Add(20 * time.Minute)
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)
	if _, err := mgr.Load(req); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestManager_Destroy(t *testing.T) {
	mgr, _ := newTestManager(t)
	sess, _ := mgr.Load(httptest.NewRequest("GET", "/", nil))
	rec := httptest.NewRecorder()
	sess.Destroy()
	if err := mgr.Save(rec, sess); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	cookie := findCookie(rec.Result().Cookies(), "test_session")
	if cookie == nil || cookie.MaxAge != -1 {
		t.Fatalf("expected session cookie cleared")
	}
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
