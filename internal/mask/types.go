package mask

// SegmentKind classifies one compiled run of a format mask. Typed kinds carry
// the specifier character itself so an expected-pattern string can be rebuilt
// without a lookup table.
type SegmentKind byte

const (
	KindLiteral SegmentKind = 0   // fixed text, never edited
	KindAny     SegmentKind = '*' // any character
	KindAlnum   SegmentKind = '#' // letters and digits
	KindAlpha   SegmentKind = 'A' // letters only
	KindDigit   SegmentKind = '9' // decimal digits only
)

// Segment is one compiled unit of a format mask: a maximal run of a single
// repeated specifier character, or a run of consecutive literal characters.
type Segment struct {
	Kind   SegmentKind
	Length int
	// Display holds the literal text for literal segments, or the specifier
	// character repeated Length times for typed segments.
	Display string
}

// Editable reports whether the segment carries a user-supplied value. Literal
// segments are fixed text.
func (s Segment) Editable() bool {
	return s.Kind != KindLiteral
}

// Breakdown is the ordered segment sequence compiled from a format mask.
type Breakdown []Segment

// Width returns the total character width of the breakdown, which always
// equals the length of the source mask.
func (b Breakdown) Width() int {
	width := 0
	for _, seg := range b {
		width += seg.Length
	}
	return width
}

// EditableCount returns the number of typed segments.
func (b Breakdown) EditableCount() int {
	count := 0
	for _, seg := range b {
		if seg.Editable() {
			count++
		}
	}
	return count
}
