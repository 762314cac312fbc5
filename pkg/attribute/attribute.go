package attribute

import (
	"github.com/atkphpframework/atk/pkg/record"
	"github.com/atkphpframework/atk/pkg/render"
)

// Flag toggles optional attribute behavior. Flags are combined with bitwise
// or at construction time.
type Flag uint32

const (
	// FlagObligatory marks the attribute as required: node-level validation
	// rejects records where it is empty.
	FlagObligatory Flag = 1 << iota
	// FlagReadOnly renders the attribute without editable controls.
	FlagReadOnly
	// FlagHidden keeps the attribute out of generated edit views.
	FlagHidden
)

// Has reports whether all bits of other are set.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}

// Attribute is the capability every node attribute satisfies. Implementations
// own exactly one record field, addressed by Name, and never retain the
// records passed to them.
type Attribute interface {
	// Name is the record field this attribute reads and writes.
	Name() string
	Flags() Flag
	// ColumnWidth is the display width hint for generated editors.
	ColumnWidth() int
	// Validate checks the record's value and reports failures through the
	// injected reporter. It never panics or returns errors; all failures are
	// reported validation outcomes.
	Validate(rec record.Record, mode string, reporter ErrorReporter)
	// Edit produces the editable markup for the record's value through the
	// injected field renderer.
	Edit(rec record.Record, fieldPrefix string, opts render.RenderOptions, fr render.FieldRenderer) string
	// Display produces a read-only rendering of the record's value.
	Display(rec record.Record) string
	// FetchValue assembles the canonical stored value from posted form data.
	FetchValue(posted map[string]string) string
	// IsEmpty reports whether the record's value counts as unset.
	IsEmpty(rec record.Record) bool
}
