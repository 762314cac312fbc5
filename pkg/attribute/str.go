package attribute

import (
	"html"
	"strings"

	"github.com/atkphpframework/atk/pkg/record"
	"github.com/atkphpframework/atk/pkg/render"
)

// StringAttribute is the plain single-input attribute: one text box, no
// format constraints beyond an optional maximum length.
type StringAttribute struct {
	name  string
	flags Flag
	size  int
}

var _ Attribute = (*StringAttribute)(nil)

// NewString constructs a string attribute over the record field name. size
// bounds both the input width and the accepted length; zero means unbounded.
func NewString(name string, flags Flag, size int) *StringAttribute {
	return &StringAttribute{name: name, flags: flags, size: size}
}

func (a *StringAttribute) Name() string {
	return a.name
}

func (a *StringAttribute) Flags() Flag {
	return a.flags
}

func (a *StringAttribute) ColumnWidth() int {
	return a.size
}

// Validate is a no-op: a free-form string has no character class to fail.
// Obligatory checking happens at the node level.
func (a *StringAttribute) Validate(record.Record, string, ErrorReporter) {}

func (a *StringAttribute) Edit(rec record.Record, fieldPrefix string, opts render.RenderOptions, fr render.FieldRenderer) string {
	return fr.RenderField(render.FieldDescriptor{
		ID:        fieldPrefix + a.name,
		Name:      fieldPrefix + a.name,
		Value:     rec.String(a.name),
		Size:      a.size,
		MaxLength: a.size,
	}, opts)
}

func (a *StringAttribute) Display(rec record.Record) string {
	return html.EscapeString(rec.String(a.name))
}

func (a *StringAttribute) FetchValue(posted map[string]string) string {
	return posted[a.name]
}

func (a *StringAttribute) IsEmpty(rec record.Record) bool {
	return strings.TrimSpace(rec.String(a.name)) == ""
}
