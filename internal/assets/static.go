// Package assets embeds the site's static files and resolves feature icons.
//
// Icons are addressed by IconID constants rather than by path. Each icon file
// is embedded individually, so removing a file or referencing an icon that
// does not exist fails the build instead of producing a broken page.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// FS returns the static tree rooted at static/, suitable for serving under
// /static/ or copying into a build directory.
func FS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
