package helpers

import (
	"context"

	"finitefield.org/dashpro-admin/internal/admin/httpserver/middleware"
)

// BasePath returns the console mount for links.
func BasePath(ctx context.Context) string {
	return middleware.BasePathFromContext(ctx)
}

// PagePath links to a console page under the mount.
func PagePath(ctx context.Context, page string) string {
	base := BasePath(ctx)
	if base == "/" {
		return "/" + page
	}
	return base + "/" + page
}

// NavActive reports whether the request addresses page. Outside a request,
// for example when the CLI renders, nothing is active.
func NavActive(ctx context.Context, page string) bool {
	info, ok := middleware.RequestInfoFromContext(ctx)
	return ok && page != "" && info.Page == page
}
