package mask

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheck(t *testing.T) {
	cases := []struct {
		name   string
		format string
		stored string
		want   *Mismatch
	}{
		{
			name:   "valid value passes",
			format: "AAA/##/##",
			stored: "abc/12/xy",
			want:   nil,
		},
		{
			name:   "digit in alpha segment fails with expected pattern",
			format: "AAA/##/##",
			stored: "ab1/12/xy",
			want:   &Mismatch{Position: 1, Expected: "AAA"},
		},
		{
			name:   "letters pass alphanumeric",
			format: "AAA/##/##",
			stored: "abc/xy/12",
			want:   nil,
		},
		{
			name:   "punctuation fails alphanumeric",
			format: "AAA/##/##",
			stored: "abc/1!/xy",
			want:   &Mismatch{Position: 2, Expected: "##"},
		},
		{
			name:   "letter fails digit segment",
			format: "99-99",
			stored: "12-x4",
			want:   &Mismatch{Position: 2, Expected: "99"},
		},
		{
			name:   "any segment accepts everything",
			format: "**",
			stored: "?!",
			want:   nil,
		},
		{
			name:   "uppercase and lowercase letters both pass alpha",
			format: "AAAA",
			stored: "aBcZ",
			want:   nil,
		},
		{
			name:   "empty value passes every segment",
			format: "AAA/##/##",
			stored: "",
			want:   nil,
		},
		{
			name:   "first failing segment wins over later failures",
			format: "AAA/99",
			stored: "a1c/xx",
			want:   &Mismatch{Position: 1, Expected: "AAA"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			breakdown := Compile(tc.format)
			got := Check(SplitValue(tc.stored, breakdown), breakdown)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Check(%q, %q) mismatch (-want +got):\n%s", tc.stored, tc.format, diff)
			}
		})
	}
}

func TestCheckPositionCountsEditableSegmentsOnly(t *testing.T) {
	// The failing alnum run is the third editable segment even though five
	// segments precede it in the breakdown.
	breakdown := Compile("AA-99-##")
	got := Check([]string{"ab", "12", "!!"}, breakdown)
	want := &Mismatch{Position: 3, Expected: "##"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Check mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckMissingValuesPass(t *testing.T) {
	breakdown := Compile("AAA/##")
	if got := Check(nil, breakdown); got != nil {
		t.Fatalf("Check(nil) = %+v, want nil", got)
	}
}
