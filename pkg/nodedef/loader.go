package nodedef

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atkphpframework/atk/pkg/attribute"
	"github.com/atkphpframework/atk/pkg/node"
)

// Definition document shapes. Files declare one or more nodes, each with an
// ordered attribute list.
type document struct {
	Nodes map[string]nodeDef `yaml:"nodes"`
}

type nodeDef struct {
	Attributes []attributeDef `yaml:"attributes"`
}

type attributeDef struct {
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type"`
	Format string   `yaml:"format"`
	Size   int      `yaml:"size"`
	Flags  []string `yaml:"flags"`
	Help   string   `yaml:"help"`
}

// Store holds loaded node definitions keyed by node name.
type Store struct {
	nodes map[string]nodeDef
}

// LoadFS walks the provided filesystem and parses every YAML node-definition
// file. A nil filesystem yields an empty store. Duplicate node names across
// files are an error.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{nodes: make(map[string]nodeDef)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("nodedef: read %s: %w", path, err)
		}

		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("nodedef: parse %s: %w", path, err)
		}

		for name, def := range doc.Nodes {
			trimmed := strings.TrimSpace(name)
			if trimmed == "" {
				return fmt.Errorf("nodedef: file %s defines an empty node name", path)
			}
			if _, exists := store.nodes[trimmed]; exists {
				return fmt.Errorf("nodedef: duplicate node %q (file %s)", trimmed, path)
			}
			if err := validateNodeDef(trimmed, def); err != nil {
				return fmt.Errorf("nodedef: file %s: %w", path, err)
			}
			store.nodes[trimmed] = def
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Names returns the loaded node names in no particular order.
func (s *Store) Names() []string {
	out := make([]string, 0, len(s.nodes))
	for name := range s.nodes {
		out = append(out, name)
	}
	return out
}

// Help returns the sanitized help markup for an attribute, or the empty
// string when none is declared.
func (s *Store) Help(nodeName, attrName string) string {
	def, ok := s.nodes[nodeName]
	if !ok {
		return ""
	}
	for _, attr := range def.Attributes {
		if attr.Name == attrName {
			return SanitizeHelp(attr.Help)
		}
	}
	return ""
}

// Build constructs the named node with its declared attributes, applying the
// provided attribute options to every format attribute (translator wiring and
// the like).
func (s *Store) Build(name string, formatOptions ...attribute.FormatOption) (*node.Node, error) {
	def, ok := s.nodes[name]
	if !ok {
		return nil, fmt.Errorf("nodedef: node %q not defined", name)
	}

	n := node.New(name)
	for _, attrDef := range def.Attributes {
		attr, err := buildAttribute(attrDef, formatOptions)
		if err != nil {
			return nil, fmt.Errorf("nodedef: node %q: %w", name, err)
		}
		if err := n.Add(attr); err != nil {
			return nil, fmt.Errorf("nodedef: %w", err)
		}
	}
	return n, nil
}

func buildAttribute(def attributeDef, formatOptions []attribute.FormatOption) (attribute.Attribute, error) {
	flags, err := parseFlags(def.Flags)
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", def.Name, err)
	}

	switch def.Type {
	case "format":
		return attribute.NewFormat(def.Name, flags, def.Format, formatOptions...), nil
	case "string", "":
		return attribute.NewString(def.Name, flags, def.Size), nil
	default:
		return nil, fmt.Errorf("attribute %q: unknown type %q", def.Name, def.Type)
	}
}

func parseFlags(names []string) (attribute.Flag, error) {
	var flags attribute.Flag
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "obligatory":
			flags |= attribute.FlagObligatory
		case "readonly":
			flags |= attribute.FlagReadOnly
		case "hidden":
			flags |= attribute.FlagHidden
		case "":
		default:
			return 0, fmt.Errorf("unknown flag %q", name)
		}
	}
	return flags, nil
}

func validateNodeDef(name string, def nodeDef) error {
	seen := make(map[string]struct{}, len(def.Attributes))
	for _, attr := range def.Attributes {
		trimmed := strings.TrimSpace(attr.Name)
		if trimmed == "" {
			return fmt.Errorf("node %q declares an attribute without a name", name)
		}
		if _, exists := seen[trimmed]; exists {
			return fmt.Errorf("node %q declares attribute %q twice", name, trimmed)
		}
		seen[trimmed] = struct{}{}
		if attr.Type == "format" && attr.Format == "" {
			return fmt.Errorf("node %q attribute %q: format type requires a mask", name, trimmed)
		}
	}
	return nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
