package assets

import (
	"embed"
	"io/fs"

	"golang.org/x/image/font/gofont/gobold"
)

// FontTTF is the caption font, Go Bold. It is compiled into the binary so a
// running server can never lose it.
var FontTTF = gobold.TTF

//go:embed web
var webFS embed.FS

// WebUI is an embedded filesystem rooted at internal/assets/web.
// It holds the page template served at "/".
var WebUI fs.FS

func init() {
	// Embed paths include the leading directory; strip it for lookups.
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}
	WebUI = sub
}
