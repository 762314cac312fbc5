package node

import (
	"fmt"
	"strings"

	"github.com/atkphpframework/atk/pkg/attribute"
	"github.com/atkphpframework/atk/pkg/record"
	"github.com/atkphpframework/atk/pkg/render"
	"github.com/atkphpframework/atk/pkg/render/template"
)

// FormRenderer renders a node's edit view and help pages through a template
// engine plus an injected field renderer.
type FormRenderer struct {
	templates template.TemplateRenderer
	fields    render.FieldRenderer
}

// NewFormRenderer wires a template engine and a field renderer together. Both
// are required.
func NewFormRenderer(templates template.TemplateRenderer, fields render.FieldRenderer) (*FormRenderer, error) {
	if templates == nil {
		return nil, fmt.Errorf("node: template renderer is required")
	}
	if fields == nil {
		return nil, fmt.Errorf("node: field renderer is required")
	}
	return &FormRenderer{templates: templates, fields: fields}, nil
}

// EditForm renders the full edit view for a record: one labelled row per
// visible attribute, each control produced by the attribute itself. Labels
// resolve through the options' translator under the key
// "<node>.<attribute>.label", falling back to the attribute name.
func (fr *FormRenderer) EditForm(n *Node, rec record.Record, errors []string, opts render.RenderOptions) (string, error) {
	rows := make([]map[string]any, 0, len(n.Attributes()))
	for _, attr := range n.Attributes() {
		if attr.Flags().Has(attribute.FlagHidden) {
			continue
		}
		label := render.Translate(opts.Locale,
			fmt.Sprintf("%s.%s.label", n.Name(), attr.Name()),
			attr.Name(), opts.Translator, opts.OnMissing)

		control := attr.Edit(rec, opts.Prefix, opts, fr.fields)
		if attr.Flags().Has(attribute.FlagReadOnly) {
			control = attr.Display(rec)
		}
		rows = append(rows, map[string]any{
			"label":   label,
			"target":  firstControlID(attr, opts.Prefix),
			"control": control,
		})
	}

	return fr.templates.RenderTemplate("edit_form", map[string]any{
		"form": map[string]any{
			"id":     strings.TrimSpace(opts.Prefix + n.Name()),
			"rows":   rows,
			"errors": errors,
		},
	})
}

// HelpPage renders the help popup for an attribute. The body is expected to
// be pre-sanitized markup (see pkg/nodedef).
func (fr *FormRenderer) HelpPage(title, body string) (string, error) {
	return fr.templates.RenderTemplate("help_popup", map[string]any{
		"title": title,
		"body":  body,
	})
}

// firstControlID mirrors the identifier scheme attributes use for their first
// editable box so labels can point at it.
func firstControlID(attr attribute.Attribute, prefix string) string {
	if fa, ok := attr.(*attribute.FormatAttribute); ok {
		fields, _ := fa.EditFields(record.Record{}, prefix)
		for _, desc := range fields {
			if !desc.Literal {
				return desc.ID
			}
		}
		return ""
	}
	return prefix + attr.Name()
}
