package render

// FieldDescriptor describes one box of a segmented editor. Literal descriptors
// carry fixed display text; editable descriptors carry the identifiers and
// limits an HTML input needs.
type FieldDescriptor struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Value     string `json:"value,omitempty"`
	Size      int    `json:"size,omitempty"`
	MaxLength int    `json:"maxLength,omitempty"`
	Literal   bool   `json:"literal,omitempty"`
	// Display holds the fixed text for literal descriptors and doubles as the
	// per-box mask hint for editable ones.
	Display string `json:"display,omitempty"`
}

// FieldRenderer turns field descriptors into input-equivalent markup. The
// attribute layer produces descriptors only; markup policy lives behind this
// seam.
type FieldRenderer interface {
	RenderField(desc FieldDescriptor, opts RenderOptions) string
	RenderHint(hint string, opts RenderOptions) string
}

// RenderOptions carry per-request data renderers may use without the caller
// mutating any attribute state.
type RenderOptions struct {
	// Mode is the surrounding form mode, e.g. "add", "edit" or "view".
	Mode string
	// Prefix namespaces generated element identifiers.
	Prefix string
	// Locale and Translator localize labels and hints when set.
	Locale     string
	Translator Translator
	// OnMissing controls the string returned when a translation is missing.
	OnMissing MissingTranslationHandler
}

// ReadOnly reports whether the options describe a non-editable rendering.
func (o RenderOptions) ReadOnly() bool {
	return o.Mode == "view"
}
