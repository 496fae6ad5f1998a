package middleware

import (
	"context"
	"net/http"
	"strings"
)

type environmentContextKey struct{}

// EnvironmentBadge returns the header badge text for a deployment label.
// Production and unset deployments get no badge.
func EnvironmentBadge(label string) string {
	label = strings.TrimSpace(label)
	if strings.EqualFold(label, "production") {
		return ""
	}
	return label
}

// Environment records the header badge for the deployment on each request.
func Environment(label string) func(http.Handler) http.Handler {
	badge := EnvironmentBadge(label)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), environmentContextKey{}, badge)))
		})
	}
}

// EnvironmentFromContext returns the badge text, or "" when none is shown.
func EnvironmentFromContext(ctx context.Context) string {
	badge, _ := ctx.Value(environmentContextKey{}).(string)
	return badge
}
