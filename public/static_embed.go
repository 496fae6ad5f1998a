// Package public embeds the console stylesheet, browser script and images.
package public

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
)

// Prefix is the URL path the assets are served under.
const Prefix = "/public/static/"

// Asset URLs referenced by rendered pages.
const (
	StylesheetPath   = Prefix + "css/dashpro.css"
	ScriptPath       = Prefix + "js/dashpro.js"
	GalleryImagePath = Prefix + "img/products.svg"
)

//go:embed static
var assets embed.FS

// Handler serves the embedded assets for requests under Prefix.
func Handler() (http.Handler, error) {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("embed static: %w", err)
	}
	return http.StripPrefix(Prefix, http.FileServer(http.FS(sub))), nil
}
