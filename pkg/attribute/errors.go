package attribute

import "github.com/atkphpframework/atk/pkg/record"

// Error codes passed to ErrorReporter.Report. Hosts can map them to their own
// taxonomy or translation keys.
const (
	CodeFormatMismatch = "error_format_mismatch"
	CodeObligatory     = "error_obligatory"
)

// ErrorReporter is the injected collaborator validation failures flow into.
// Reporting is the only failure channel: attributes never abort validation
// with an error of their own.
type ErrorReporter interface {
	Report(rec record.Record, field, code, message string)
}

// ValidationError is one reported validation failure.
type ValidationError struct {
	Record  record.Record
	Field   string
	Code    string
	Message string
}

// Collector is an ErrorReporter that appends every report, in order. The zero
// value is ready to use.
type Collector struct {
	Errors []ValidationError
}

func (c *Collector) Report(rec record.Record, field, code, message string) {
	c.Errors = append(c.Errors, ValidationError{
		Record:  rec,
		Field:   field,
		Code:    code,
		Message: message,
	})
}

// Empty reports whether no failures were collected.
func (c *Collector) Empty() bool {
	return len(c.Errors) == 0
}
