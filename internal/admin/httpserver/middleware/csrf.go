package middleware

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"finitefield.org/dashpro-admin/internal/admin/config"
)

type csrfContextKey struct{}

// CSRFConfig controls the double-submit token guarding event and preference
// posts. Zero fields take the config package defaults.
type CSRFConfig struct {
	CookieName string
	CookiePath string
	HeaderName string
	MaxAge     time.Duration
	Secure     bool
}

func (c CSRFConfig) withDefaults() CSRFConfig {
	if c.CookieName == "" {
		c.CookieName = config.DefaultCSRFCookie
	}
	if c.HeaderName == "" {
		c.HeaderName = config.DefaultCSRFHeader
	}
	if c.CookiePath == "" {
		c.CookiePath = "/"
	}
	if c.MaxAge <= 0 {
		c.MaxAge = config.DefaultCSRFLifetime
	}
	return c
}

// CSRFToken is what a rendered page embeds so the browser script can echo
// the token back: the value and the header to send it in.
type CSRFToken struct {
	Value  string
	Header string
}

var errShortToken = errors.New("csrf: short random read")

// CSRF issues the token cookie on first contact and rejects unsafe methods
// whose header does not match it.
func CSRF(cfg CSRFConfig) func(http.Handler) http.Handler {
	cfg = cfg.withDefaults()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := cfg.token(w, r)
			if err != nil {
				http.Error(w, "csrf token error", http.StatusInternalServerError)
				return
			}
			if !safeMethod(r.Method) && !tokensMatch(r.Header.Get(cfg.HeaderName), token) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			ctx := context.WithValue(r.Context(), csrfContextKey{}, CSRFToken{Value: token, Header: cfg.HeaderName})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CSRFFromContext returns the token issued for the request.
func CSRFFromContext(ctx context.Context) (CSRFToken, bool) {
	tok, ok := ctx.Value(csrfContextKey{}).(CSRFToken)
	return tok, ok && tok.Value != ""
}

func (c CSRFConfig) token(w http.ResponseWriter, r *http.Request) (string, error) {
	if existing, err := r.Cookie(c.CookieName); err == nil && existing.Value != "" {
		return existing.Value, nil
	}
	raw := securecookie.GenerateRandomKey(32)
	if raw == nil {
		return "", errShortToken
	}
	token := base64.RawURLEncoding.EncodeToString(raw)
	http.SetCookie(w, &http.Cookie{
		Name:     c.CookieName,
		Value:    token,
		Path:     c.CookiePath,
		HttpOnly: true,
		Secure:   c.Secure || r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(c.MaxAge.Seconds()),
	})
	return token, nil
}

func tokensMatch(submitted, issued string) bool {
	if submitted == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(issued)) == 1
}

func safeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}
