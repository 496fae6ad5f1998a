package middleware

import (
	"context"
	"net/http"
	"strings"

	"finitefield.org/dashpro-admin/internal/admin/config"
)

type requestInfoContextKey struct{}

// RequestInfo locates the request within the console mount.
type RequestInfo struct {
	// BasePath is where the console is mounted, "/" or "/console".
	BasePath string
	Path     string
	// Page is the first path segment below BasePath, "" for the mount root.
	Page string
}

// RequestInfoMiddleware annotates the context with the console mount and the
// page the request addresses.
func RequestInfoMiddleware(basePath string) func(http.Handler) http.Handler {
	base := config.NormalizeBasePath(basePath)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := RequestInfo{
				BasePath: base,
				Path:     r.URL.Path,
				Page:     pageSegment(base, r.URL.Path),
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestInfoContextKey{}, info)))
		})
	}
}

// RequestInfoFromContext returns what RequestInfoMiddleware stored.
func RequestInfoFromContext(ctx context.Context) (RequestInfo, bool) {
	info, ok := ctx.Value(requestInfoContextKey{}).(RequestInfo)
	return info, ok
}

// BasePathFromContext returns the console mount, "/" outside a request.
func BasePathFromContext(ctx context.Context) string {
	if info, ok := RequestInfoFromContext(ctx); ok {
		return info.BasePath
	}
	return "/"
}

func pageSegment(base, path string) string {
	rest := path
	if base != "/" {
		if rest != base && !strings.HasPrefix(rest, base+"/") {
			return ""
		}
		rest = strings.TrimPrefix(rest, base)
	}
	rest = strings.TrimPrefix(rest, "/")
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
