package template

import "io"

// TemplateRenderer is the seam form-level renderers rely on for chrome
// markup: edit views, help popups and similar page fragments. The pongo
// subpackage provides the default implementation.
type TemplateRenderer interface {
	// Render resolves name as a template path, or treats it as inline template
	// content when it looks like markup rather than a path.
	Render(name string, data any, out ...io.Writer) (string, error)
	// RenderTemplate resolves name against the configured template source.
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// RenderString executes inline template content.
	RenderString(content string, data any, out ...io.Writer) (string, error)
}
