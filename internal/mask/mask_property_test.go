//go:build property
// +build property

package mask

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestMaskProperties exercises the compiler and codec over generated masks and
// values rather than hand-picked examples.
func TestMaskProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	maskGen := gen.RegexMatch(`^[A9#*/.\- a-z]{0,24}$`)

	// Property: compilation is deterministic and idempotent.
	properties.Property("recompiling yields identical breakdowns", prop.ForAll(
		func(format string) bool {
			return reflect.DeepEqual(Compile(format), Compile(format))
		},
		maskGen,
	))

	// Property: segment widths sum to the mask length.
	properties.Property("segment widths cover the mask", prop.ForAll(
		func(format string) bool {
			return Compile(format).Width() == len(format)
		},
		maskGen,
	))

	// Property: a breakdown never holds two adjacent literal segments, and
	// every segment has positive length.
	properties.Property("maximal runs", prop.ForAll(
		func(format string) bool {
			breakdown := Compile(format)
			for i, seg := range breakdown {
				if seg.Length < 1 || len(seg.Display) != seg.Length {
					return false
				}
				if i > 0 && seg.Kind == KindLiteral && breakdown[i-1].Kind == KindLiteral {
					return false
				}
			}
			return true
		},
		maskGen,
	))

	// Property: split/join round-trips typed fragments up to whitespace
	// padding. Re-splitting the rejoined value must reproduce the trimmed
	// fragments exactly.
	properties.Property("codec round trip preserves trimmed fragments", prop.ForAll(
		func(format, stored string) bool {
			breakdown := Compile(format)
			values := SplitValue(stored, breakdown)
			again := SplitValue(JoinValues(values, breakdown), breakdown)
			return reflect.DeepEqual(values, again)
		},
		maskGen,
		gen.RegexMatch(`^[A-Za-z0-9/.\- ]{0,24}$`),
	))

	// Property: join always restores the mask width when no fragment
	// overflows its segment.
	properties.Property("join restores mask width", prop.ForAll(
		func(format string) bool {
			breakdown := Compile(format)
			joined := JoinValues(nil, breakdown)
			return len(joined) == len(format) && strings.TrimRight(joined, " ") == strings.TrimRight(literalImage(breakdown), " ")
		},
		maskGen,
	))

	properties.TestingRun(t)
}

func literalImage(breakdown Breakdown) string {
	var b strings.Builder
	for _, seg := range breakdown {
		if seg.Editable() {
			b.WriteString(strings.Repeat(" ", seg.Length))
			continue
		}
		b.WriteString(seg.Display)
	}
	return b.String()
}
