package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// TemplatesFS exposes the embedded chrome templates (edit view, help popup)
// consumed by the pongo engine.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
