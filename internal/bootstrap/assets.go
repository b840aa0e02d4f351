package bootstrap

import (
	"fmt"
	"io/fs"
	"os"

	bankui "github.com/bankingapplication/bank-ui"
)

// Assets holds the filesystems templates and static files are served from.
type Assets struct {
	Templates fs.FS
	Static    fs.FS
}

// LoadAssets returns the UI asset filesystems. In dev mode assets are read
// from disk so template edits show up without a rebuild; otherwise the
// embedded copies baked into the binary are used.
func LoadAssets(isDev bool) (Assets, error) {
	if isDev {
		return Assets{
			Templates: os.DirFS("web/templates"),
			Static:    os.DirFS("web/static"),
		}, nil
	}

	templates, err := fs.Sub(bankui.TemplateFS, "web/templates")
	if err != nil {
		return Assets{}, fmt.Errorf("embedded templates: %w", err)
	}
	static, err := fs.Sub(bankui.StaticFS, "web/static")
	if err != nil {
		return Assets{}, fmt.Errorf("embedded static assets: %w", err)
	}
	return Assets{Templates: templates, Static: static}, nil
}
