package i18n

import (
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// elseKey is the bundle-file key holding a bucket's fallback template.
const elseKey = "else"

// Bucket is a numeric template bucket: templates keyed by an exact count or
// ordinal written as a decimal string, plus a fallback.
type Bucket struct {
	Cases map[string]string
	// Else is used when no case matches. An empty Else selects the empty string.
	Else string
}

// Select returns the template registered for key, or Else when key is empty
// or has no exact entry. Keys are compared verbatim; "01" does not match "1".
func (b Bucket) Select(key string) string {
	if key != "" {
		if tpl, ok := b.Cases[key]; ok {
			return tpl
		}
	}
	return b.Else
}

// Empty reports whether the bucket holds no template at all.
func (b Bucket) Empty() bool {
	return len(b.Cases) == 0 && b.Else == ""
}

// UnmarshalYAML decodes a flat mapping; the "else" entry becomes Else.
func (b *Bucket) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: bucket at line %d is not a mapping", ErrInvalidBundle, value.Line)
	}

	var raw map[string]string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("%w: bucket at line %d: %s", ErrInvalidBundle, value.Line, err)
	}

	b.Cases = make(map[string]string, len(raw))
	b.Else = ""
	for k, v := range raw {
		if k == elseKey {
			b.Else = v
			continue
		}
		b.Cases[k] = v
	}
	return nil
}

// MarshalYAML writes the bucket back in its flat file form.
func (b Bucket) MarshalYAML() (any, error) {
	out := make(map[string]string, len(b.Cases)+1)
	maps.Copy(out, b.Cases)
	if b.Else != "" {
		out[elseKey] = b.Else
	}
	return out, nil
}
