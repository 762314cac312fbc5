package record

import "fmt"

// Record is the caller-owned mapping of field names to stored values that
// attributes read and write. Lookups are permissive: a missing or nil field
// reads as the empty string, never an error.
type Record map[string]any

// String returns the stored value for field as a string. Non-string values
// are formatted with fmt.Sprint.
func (r Record) String(field string) string {
	if r == nil {
		return ""
	}
	value, ok := r[field]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// Has reports whether the record carries a non-nil value for field.
func (r Record) Has(field string) bool {
	if r == nil {
		return false
	}
	value, ok := r[field]
	return ok && value != nil
}

// Set stores value under field. Setting on a nil record is a no-op.
func (r Record) Set(field string, value any) {
	if r == nil {
		return
	}
	r[field] = value
}
