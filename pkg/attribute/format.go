package attribute

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/atkphpframework/atk/pkg/mask"
	"github.com/atkphpframework/atk/pkg/record"
	"github.com/atkphpframework/atk/pkg/render"
)

// Translation key and fallback template for format validation failures. The
// template receives the 1-based segment position and the expected pattern.
const (
	msgKeyFormatMismatch     = "error_format_mismatch"
	msgDefaultFormatMismatch = "value part %d does not match the expected pattern %s"
)

// FormatOption configures a FormatAttribute at construction time.
type FormatOption func(*FormatAttribute)

// WithTranslator injects the localized-text collaborator used to resolve the
// validation message template.
func WithTranslator(t render.Translator) FormatOption {
	return func(a *FormatAttribute) {
		a.translator = t
	}
}

// WithLocale sets the locale passed to the translator.
func WithLocale(locale string) FormatOption {
	return func(a *FormatAttribute) {
		a.locale = locale
	}
}

// FormatAttribute edits, stores and validates a record field against a
// literal format mask such as "AAA/##/##". The mask is compiled once, on first
// use, into a breakdown of typed and literal segments; the editor renders one
// input box per typed segment and fixed text for literal ones.
type FormatAttribute struct {
	name   string
	flags  Flag
	format string

	translator render.Translator
	locale     string

	once      sync.Once
	breakdown mask.Breakdown
}

var _ Attribute = (*FormatAttribute)(nil)

// NewFormat constructs a format attribute over the record field name. The
// attribute's total display width equals the mask length. The mask is
// immutable after construction.
func NewFormat(name string, flags Flag, format string, options ...FormatOption) *FormatAttribute {
	a := &FormatAttribute{
		name:   name,
		flags:  flags,
		format: format,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

func (a *FormatAttribute) Name() string {
	return a.name
}

func (a *FormatAttribute) Flags() Flag {
	return a.flags
}

func (a *FormatAttribute) ColumnWidth() int {
	return len(a.format)
}

// Format returns the literal mask supplied at construction.
func (a *FormatAttribute) Format() string {
	return a.format
}

// Breakdown returns the compiled mask, computing it on first use. Compilation
// is deterministic, so concurrent first calls would race toward the same
// value; sync.Once keeps the write single regardless.
func (a *FormatAttribute) Breakdown() mask.Breakdown {
	a.once.Do(func() {
		a.breakdown = mask.Compile(a.format)
	})
	return a.breakdown
}

// Validate decodes the record's value into per-segment fragments and checks
// each against its segment's character class. Only the first mismatch is
// reported; later segments go unchecked. Known limitation carried over from
// the original behavior.
func (a *FormatAttribute) Validate(rec record.Record, mode string, reporter ErrorReporter) {
	breakdown := a.Breakdown()
	mismatch := mask.Check(mask.SplitValue(rec.String(a.name), breakdown), breakdown)
	if mismatch == nil {
		return
	}

	template := render.Translate(a.locale, msgKeyFormatMismatch, msgDefaultFormatMismatch, a.translator, nil)
	reporter.Report(rec, a.name, CodeFormatMismatch, fmt.Sprintf(template, mismatch.Position, mismatch.Expected))
}

// EditFields builds the ordered field descriptors for a segmented editor plus
// the space-joined display-mask hint shown alongside it. Pure data; the
// renderer decides markup.
func (a *FormatAttribute) EditFields(rec record.Record, fieldPrefix string) ([]render.FieldDescriptor, string) {
	breakdown := a.Breakdown()
	values := mask.SplitValue(rec.String(a.name), breakdown)

	fields := make([]render.FieldDescriptor, 0, len(breakdown))
	hints := make([]string, 0, len(breakdown))
	next := 0
	for i, seg := range breakdown {
		hints = append(hints, seg.Display)
		if !seg.Editable() {
			fields = append(fields, render.FieldDescriptor{
				Literal: true,
				Display: seg.Display,
			})
			continue
		}
		value := ""
		if next < len(values) {
			value = values[next]
		}
		next++
		fields = append(fields, render.FieldDescriptor{
			ID:        boxID(fieldPrefix, a.name, i),
			Name:      boxID(fieldPrefix, a.name, i),
			Value:     value,
			Size:      seg.Length,
			MaxLength: seg.Length,
			Display:   seg.Display,
		})
	}
	return fields, strings.Join(hints, " ")
}

// Edit renders the segmented editor by feeding every descriptor through the
// injected field renderer, followed by the mask hint.
func (a *FormatAttribute) Edit(rec record.Record, fieldPrefix string, opts render.RenderOptions, fr render.FieldRenderer) string {
	fields, hint := a.EditFields(rec, fieldPrefix)

	var b strings.Builder
	for _, desc := range fields {
		b.WriteString(fr.RenderField(desc, opts))
	}
	if hint != "" {
		b.WriteString(fr.RenderHint(hint, opts))
	}
	return b.String()
}

// Display renders the stored value as escaped text, trailing pad spaces
// removed.
func (a *FormatAttribute) Display(rec record.Record) string {
	return html.EscapeString(strings.TrimRight(rec.String(a.name), " "))
}

// FetchValue reassembles the canonical stored value from posted per-box
// fragments. Boxes post under the same identifiers EditFields generates;
// missing entries count as empty and come out space-padded.
func (a *FormatAttribute) FetchValue(posted map[string]string) string {
	return a.fetchValue(posted, "")
}

// FetchValueWithPrefix is FetchValue for editors rendered under a field
// prefix.
func (a *FormatAttribute) FetchValueWithPrefix(posted map[string]string, fieldPrefix string) string {
	return a.fetchValue(posted, fieldPrefix)
}

func (a *FormatAttribute) fetchValue(posted map[string]string, fieldPrefix string) string {
	breakdown := a.Breakdown()
	values := make([]string, 0, breakdown.EditableCount())
	for i, seg := range breakdown {
		if !seg.Editable() {
			continue
		}
		values = append(values, posted[boxID(fieldPrefix, a.name, i)])
	}
	return mask.JoinValues(values, breakdown)
}

// IsEmpty reports whether every typed segment of the record's value is blank
// after trimming. Literal segments never affect emptiness, so a record holding
// only the mask's fixed text still counts as unset.
func (a *FormatAttribute) IsEmpty(rec record.Record) bool {
	breakdown := a.Breakdown()
	for _, value := range mask.SplitValue(rec.String(a.name), breakdown) {
		if value != "" {
			return false
		}
	}
	return true
}

// boxID derives the element identifier for the i-th segment of the breakdown.
func boxID(fieldPrefix, name string, i int) string {
	return fmt.Sprintf("%s%s_%d", fieldPrefix, name, i)
}
