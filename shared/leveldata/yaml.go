package leveldata

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads one descriptor from r and validates it. Every failure,
// including syntax errors, is reported as a *LevelDataError.
func DecodeYAML(r io.Reader, source string) (*Descriptor, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Descriptor
	if err := dec.Decode(&d); err != nil {
		var lde *LevelDataError
		if errors.As(err, &lde) {
			lde.Source = source
			return nil, lde
		}
		if errors.Is(err, io.EOF) {
			return nil, &LevelDataError{Source: source, Reason: "empty document"}
		}
		return nil, &LevelDataError{Source: source, Reason: err.Error()}
	}
	d.Source = source
	if err := Validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// EncodeYAML writes d in the same format DecodeYAML reads.
func EncodeYAML(w io.Writer, d *Descriptor) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode level %d: %w", d.ID, err)
	}
	return enc.Close()
}

// requireKeys fails when a mapping node lacks any of the named keys. Zero is
// a legal coordinate, so presence has to be checked on the node itself.
func requireKeys(node *yaml.Node, what string, keys ...string) error {
	if node.Kind != yaml.MappingNode {
		return &LevelDataError{Field: what, Reason: fmt.Sprintf("line %d: expected a mapping", node.Line)}
	}
	present := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		present[node.Content[i].Value] = true
	}
	var missing []string
	for _, k := range keys {
		if !present[k] {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &LevelDataError{
			Field:  what,
			Reason: fmt.Sprintf("line %d: missing %s", node.Line, strings.Join(missing, ", ")),
		}
	}
	return nil
}

func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	if err := requireKeys(node, "spawn", "x", "y"); err != nil {
		return err
	}
	type plain Point
	return node.Decode((*plain)(p))
}

func (r *RectSpec) UnmarshalYAML(node *yaml.Node) error {
	if err := requireKeys(node, "goal", "x", "y", "width", "height"); err != nil {
		return err
	}
	type plain RectSpec
	return node.Decode((*plain)(r))
}

func (p *PlatformSpec) UnmarshalYAML(node *yaml.Node) error {
	if err := requireKeys(node, "platforms", "x", "y", "width", "height"); err != nil {
		return err
	}
	type plain PlatformSpec
	return node.Decode((*plain)(p))
}

func (m *MovingPlatformSpec) UnmarshalYAML(node *yaml.Node) error {
	if err := requireKeys(node, "moving_platforms", "x", "y", "width", "height"); err != nil {
		return err
	}
	type plain MovingPlatformSpec
	return node.Decode((*plain)(m))
}
