package mask

// Mismatch describes the first segment value that failed its character class.
type Mismatch struct {
	// Position is the 1-based index of the failing segment, counted among
	// editable segments only.
	Position int
	// Expected is the specifier character repeated to the segment length,
	// e.g. "AAA" for a three-wide alpha segment.
	Expected string
}

// Check validates each editable segment value against its kind and returns the
// first mismatch, or nil when every segment passes. Checking stops at the
// first failing segment; later segments go unchecked. Known limitation of the
// original behavior, reproduced rather than upgraded to collect-all.
func Check(values []string, breakdown Breakdown) *Mismatch {
	next := 0
	for _, seg := range breakdown {
		if !seg.Editable() {
			continue
		}
		value := ""
		if next < len(values) {
			value = values[next]
		}
		next++
		if segmentMatches(value, seg.Kind) {
			continue
		}
		return &Mismatch{Position: next, Expected: seg.Display}
	}
	return nil
}

func segmentMatches(value string, kind SegmentKind) bool {
	for i := 0; i < len(value); i++ {
		if !charMatches(value[i], kind) {
			return false
		}
	}
	return true
}

func charMatches(ch byte, kind SegmentKind) bool {
	switch kind {
	case KindAny:
		return true
	case KindDigit:
		return isDigit(ch)
	case KindAlpha:
		return isLetter(ch)
	case KindAlnum:
		return isDigit(ch) || isLetter(ch)
	default:
		return true
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
