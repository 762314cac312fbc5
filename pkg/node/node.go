package node

import (
	"fmt"
	"strings"

	"github.com/atkphpframework/atk/pkg/attribute"
	"github.com/atkphpframework/atk/pkg/record"
)

// Node groups the attributes of one entity type and coordinates validation,
// editing and action notification across them. Attributes keep their
// registration order everywhere: edit views, validation and fetch all walk
// them in the order they were added.
type Node struct {
	name       string
	attributes []attribute.Attribute
	index      map[string]int

	listeners listenerRegistry
}

// New constructs an empty node.
func New(name string) *Node {
	return &Node{
		name:  strings.TrimSpace(name),
		index: make(map[string]int),
	}
}

// Name returns the node's entity name.
func (n *Node) Name() string {
	return n.name
}

// Add registers an attribute. Duplicate attribute names return an error.
func (n *Node) Add(attr attribute.Attribute) error {
	if attr == nil {
		return fmt.Errorf("node %s: attribute is required", n.name)
	}
	name := strings.TrimSpace(attr.Name())
	if name == "" {
		return fmt.Errorf("node %s: attribute name is required", n.name)
	}
	if _, exists := n.index[name]; exists {
		return fmt.Errorf("node %s: attribute %q already registered", n.name, name)
	}
	n.index[name] = len(n.attributes)
	n.attributes = append(n.attributes, attr)
	return nil
}

// MustAdd panics on registration failure. Useful for init-time wiring.
func (n *Node) MustAdd(attr attribute.Attribute) *Node {
	if err := n.Add(attr); err != nil {
		panic(err)
	}
	return n
}

// Attribute retrieves a registered attribute by name.
func (n *Node) Attribute(name string) (attribute.Attribute, bool) {
	i, ok := n.index[name]
	if !ok {
		return nil, false
	}
	return n.attributes[i], true
}

// Attributes returns the registered attributes in registration order. The
// returned slice is a copy.
func (n *Node) Attributes() []attribute.Attribute {
	out := make([]attribute.Attribute, len(n.attributes))
	copy(out, n.attributes)
	return out
}

// Validate walks every attribute in order. Obligatory attributes that read as
// empty are reported and skipped; all others delegate to the attribute's own
// Validate.
func (n *Node) Validate(rec record.Record, mode string, reporter attribute.ErrorReporter) {
	for _, attr := range n.attributes {
		if attr.Flags().Has(attribute.FlagObligatory) && attr.IsEmpty(rec) {
			reporter.Report(rec, attr.Name(), attribute.CodeObligatory, fmt.Sprintf("field %s is required", attr.Name()))
			continue
		}
		attr.Validate(rec, mode, reporter)
	}
}

// FetchRecord assembles a record from posted form data by asking every
// non-hidden attribute for its canonical value.
func (n *Node) FetchRecord(posted map[string]string) record.Record {
	rec := record.Record{}
	for _, attr := range n.attributes {
		if attr.Flags().Has(attribute.FlagHidden) {
			continue
		}
		rec.Set(attr.Name(), attr.FetchValue(posted))
	}
	return rec
}
