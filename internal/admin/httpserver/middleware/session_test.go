package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finitefield.org/dashpro-admin/internal/admin/preferences"
	appsession "finitefield.org/dashpro-admin/internal/admin/session"
)

type sessionTestClock struct {
	now time.Time
}

func (c *sessionTestClock) Now() time.Time {
	return c.now
}

func newSessionStoreForTest(t *testing.T, clock *sessionTestClock) *appsession.Manager {
	t.Helper()
	hashKey := []byte("12345678901234567890123456789012")
	blockKey := []byte("abcdefghijklmnopqrstuvwxyzABCDEF")
	httpOnly := true
	store, err := appsession.NewManager(appsession.Config{
		CookieName:     "test_session",
		HashKey:        hashKey,
		BlockKey:       blockKey,
		CookiePath:     "/",
		CookieHTTPOnly: &httpOnly,
		IdleTimeout:    5 * time.Minute,
		Lifetime:       time.Hour,
		Now:            clock.Now,
	})
	if err != nil {
		t.Fatalf("session manager init: %v", err)
	}
	return store
}

func TestSessionMiddlewareLifecycle(t *testing.T) {
	clock := &sessionTestClock{now: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)}
	store := newSessionStoreForTest(t, clock)

	var ids []string
	handler := Session(store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			t.Fatalf("session missing in context")
		}
		ids = append(ids, sess.ID())
		w.WriteHeader(http.StatusOK)
	}))

	rec1 := httptest.NewRecorder()
	handler.ServeHTTP(rec1, httptest.NewRequest(http.MethodGet, "/", nil))
	if len(ids) != 1 || ids[0] == "" {
		t.Fatalf("expected initial session id")
	}
	cookie := findCookie(rec1.Result().Cookies(), "test_session")
	if cookie == nil {
		t.Fatalf("expected session cookie on first response, got headers %v", rec1.Header().Values("Set-Cookie"))
	}

	clock.now = clock.now.Add(2 * time.Minute)
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookie)
	handler.ServeHTTP(httptest.NewRecorder(), req2)
	if len(ids) != 2 || ids[1] != ids[0] {
		t.Fatalf("expected same session id between active requests, got %v", ids)
	}

	clock.now = clock.now.Add(15 * time.Minute) // exceed idle timeout
	req3 := httptest.NewRequest(http.MethodGet, "/", nil)
	req3.AddCookie(cookie)
	rec3 := httptest.NewRecorder()
	handler.ServeHTTP(rec3, req3)
	if len(ids) != 3 || ids[2] == ids[1] {
		t.Fatalf("expected new session id after idle timeout, got %v", ids)
	}
	if header := rec3.Header().Get("Set-Cookie"); header == "" {
		t.Fatalf("expected refreshed session cookie after timeout")
	}
}

func TestSessionMiddlewareSavesBeforeBody(t *testing.T) {
	clock := &sessionTestClock{now: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)}
	store := newSessionStoreForTest(t, clock)

	handler := Session(store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r.Context())
		_ = sess.Set(r.Context(), preferences.KeyLanguage, "id")
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookie := findCookie(rec.Result().Cookies(), "test_session")
	if cookie == nil {
		t.Fatalf("expected session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	sess, err := store.Load(req)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if v, _ := sess.Get(context.Background(), preferences.KeyLanguage); v != "id" {
		t.Fatalf("expected language written before body, got %q", v)
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
