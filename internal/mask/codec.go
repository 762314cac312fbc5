package mask

import "strings"

// SplitValue slices a flat stored value into the values of the breakdown's
// editable segments, in order. Literal segments consume their width but
// produce no value. Extracted values are trimmed of surrounding whitespace.
// Short input is not an error: trailing segments decode to whatever remains,
// possibly the empty string.
func SplitValue(stored string, breakdown Breakdown) []string {
	values := make([]string, 0, breakdown.EditableCount())
	pos := 0
	for _, seg := range breakdown {
		if !seg.Editable() {
			pos += seg.Length
			continue
		}
		values = append(values, strings.TrimSpace(substr(stored, pos, seg.Length)))
		pos += seg.Length
	}
	return values
}

// JoinValues reassembles per-segment values into the canonical stored string.
// Literal segments emit their display text verbatim; typed segments emit the
// value at the matching editable position, right-padded with spaces to the
// segment length. Padding ignores the segment kind: a short digit run comes
// out space-padded, not zero-padded. Known quirk, kept as observed behavior.
// Missing entries count as empty, so the result width always equals the width
// of the source mask.
func JoinValues(values []string, breakdown Breakdown) string {
	var b strings.Builder
	b.Grow(breakdown.Width())
	next := 0
	for _, seg := range breakdown {
		if !seg.Editable() {
			b.WriteString(seg.Display)
			continue
		}
		value := ""
		if next < len(values) {
			value = values[next]
		}
		next++
		b.WriteString(pad(value, seg.Length))
	}
	return b.String()
}

func substr(s string, pos, length int) string {
	if pos >= len(s) {
		return ""
	}
	end := pos + length
	if end > len(s) {
		end = len(s)
	}
	return s[pos:end]
}

func pad(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}
