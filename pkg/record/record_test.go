package record

import "testing"

func TestStringIsPermissive(t *testing.T) {
	rec := Record{"code": "abc/12/xy", "count": 3, "gone": nil}

	if got := rec.String("code"); got != "abc/12/xy" {
		t.Fatalf("String(code) = %q", got)
	}
	if got := rec.String("count"); got != "3" {
		t.Fatalf("String(count) = %q", got)
	}
	if got := rec.String("gone"); got != "" {
		t.Fatalf("String(gone) = %q, want empty", got)
	}
	if got := rec.String("missing"); got != "" {
		t.Fatalf("String(missing) = %q, want empty", got)
	}

	var nilRec Record
	if got := nilRec.String("code"); got != "" {
		t.Fatalf("nil record String = %q, want empty", got)
	}
}

func TestHasAndSet(t *testing.T) {
	rec := Record{}
	if rec.Has("code") {
		t.Fatal("Has on empty record should be false")
	}
	rec.Set("code", "abc")
	if !rec.Has("code") {
		t.Fatal("Has after Set should be true")
	}

	var nilRec Record
	nilRec.Set("code", "abc") // must not panic
	if nilRec.Has("code") {
		t.Fatal("nil record never holds values")
	}
}
