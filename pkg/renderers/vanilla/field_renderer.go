package vanilla

import (
	"html"
	"strconv"
	"strings"

	"github.com/atkphpframework/atk/pkg/render"
)

// Renderer is the default render.FieldRenderer: plain HTML inputs built by
// hand, no client-side framework assumed.
type Renderer struct {
	inputClass   string
	literalClass string
	hintClass    string
}

var _ render.FieldRenderer = (*Renderer)(nil)

// Option adjusts the renderer's chrome classes.
type Option func(*Renderer)

// WithInputClass overrides the CSS class on editable inputs.
func WithInputClass(class string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(class); trimmed != "" {
			r.inputClass = trimmed
		}
	}
}

// New constructs a renderer with the default chrome classes.
func New(options ...Option) *Renderer {
	r := &Renderer{
		inputClass:   string(ClassInput),
		literalClass: string(ClassLiteral),
		hintClass:    string(ClassHint),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// RenderField emits one input element for editable descriptors and a span of
// fixed text for literal ones.
func (r *Renderer) RenderField(desc render.FieldDescriptor, opts render.RenderOptions) string {
	if desc.Literal {
		var b strings.Builder
		b.WriteString(`<span class="`)
		b.WriteString(r.literalClass)
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(desc.Display))
		b.WriteString(`</span>`)
		return b.String()
	}

	var b strings.Builder
	b.Grow(160)
	b.WriteString(`<input type="text" id="`)
	b.WriteString(html.EscapeString(desc.ID))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(desc.Name))
	b.WriteString(`" class="`)
	b.WriteString(r.inputClass)
	b.WriteString(`" value="`)
	b.WriteString(html.EscapeString(desc.Value))
	b.WriteString(`"`)
	if desc.Size > 0 {
		b.WriteString(` size="`)
		b.WriteString(strconv.Itoa(desc.Size))
		b.WriteString(`"`)
	}
	if desc.MaxLength > 0 {
		b.WriteString(` maxlength="`)
		b.WriteString(strconv.Itoa(desc.MaxLength))
		b.WriteString(`"`)
	}
	if opts.ReadOnly() {
		b.WriteString(` readonly`)
	}
	b.WriteString(`>`)
	return b.String()
}

// RenderHint emits the display-mask hint shown alongside the editable boxes.
func (r *Renderer) RenderHint(hint string, _ render.RenderOptions) string {
	trimmed := strings.TrimSpace(hint)
	if trimmed == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(` <small class="`)
	b.WriteString(r.hintClass)
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(trimmed))
	b.WriteString(`</small>`)
	return b.String()
}
