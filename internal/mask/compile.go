package mask

// IsSpecifier reports whether ch is one of the four placeholder characters a
// format mask recognises: '*', '#', 'A' and '9'. Every other character is a
// literal.
func IsSpecifier(ch byte) bool {
	switch ch {
	case '*', '#', 'A', '9':
		return true
	default:
		return false
	}
}

// SameSegment is the grouping rule of the compiler: two adjacent mask
// characters share a segment when both are literals, or when they are the
// identical specifier character.
func SameSegment(a, b byte) bool {
	if !IsSpecifier(a) && !IsSpecifier(b) {
		return true
	}
	return a == b
}

// Compile scans the mask left to right and returns its breakdown: maximal runs
// of one repeated specifier character, or of consecutive literal characters
// regardless of their values. An empty mask compiles to an empty breakdown.
// Compilation is deterministic and has no side effects, so recompiling the
// same mask yields a structurally identical result.
func Compile(format string) Breakdown {
	if format == "" {
		return nil
	}

	out := make(Breakdown, 0, 8)
	cur := openSegment(format[0])
	for i := 1; i < len(format); i++ {
		ch := format[i]
		if SameSegment(format[i-1], ch) {
			cur.Length++
			cur.Display += string(ch)
			continue
		}
		out = append(out, cur)
		cur = openSegment(ch)
	}
	return append(out, cur)
}

func openSegment(ch byte) Segment {
	kind := KindLiteral
	if IsSpecifier(ch) {
		kind = SegmentKind(ch)
	}
	return Segment{Kind: kind, Length: 1, Display: string(ch)}
}
