package ui

import "strings"

func joinBasePath(basePath, suffix string) string {
	base := strings.TrimSpace(basePath)
	if !strings.HasPrefix(suffix, "/") {
		suffix = "/" + suffix
	}
	if base == "" || base == "/" {
		return suffix
	}
	return strings.TrimRight(base, "/") + suffix
}
