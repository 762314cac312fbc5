package mask

import internalmask "github.com/atkphpframework/atk/internal/mask"

// SegmentKind re-exports the internal segment kind enumeration.
type SegmentKind = internalmask.SegmentKind

const (
	KindLiteral = internalmask.KindLiteral
	KindAny     = internalmask.KindAny
	KindAlnum   = internalmask.KindAlnum
	KindAlpha   = internalmask.KindAlpha
	KindDigit   = internalmask.KindDigit
)

type Segment = internalmask.Segment
type Breakdown = internalmask.Breakdown
type Mismatch = internalmask.Mismatch

// Compile turns a format mask into its segment breakdown.
func Compile(format string) Breakdown {
	return internalmask.Compile(format)
}

// IsSpecifier reports whether ch is a mask placeholder character.
func IsSpecifier(ch byte) bool {
	return internalmask.IsSpecifier(ch)
}

// SplitValue decodes a stored value into per-segment fragments.
func SplitValue(stored string, breakdown Breakdown) []string {
	return internalmask.SplitValue(stored, breakdown)
}

// JoinValues encodes per-segment fragments into the canonical stored value.
func JoinValues(values []string, breakdown Breakdown) string {
	return internalmask.JoinValues(values, breakdown)
}

// Check returns the first fragment that fails its segment's character class.
func Check(values []string, breakdown Breakdown) *Mismatch {
	return internalmask.Check(values, breakdown)
}
