// Package attribute declares the typed fields a node is composed of. An
// Attribute owns one record field and knows how to edit, display, validate
// and fetch it; FormatAttribute is the masked variant that edits its value
// through a breakdown of typed segments.
package attribute
