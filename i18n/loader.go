package i18n

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML bundle and validates it. Keys mirror the semantic
// template keys; a bucket is a mapping whose "else" entry is the fallback:
//
//	daily:
//	  "1": every day
//	  else: every %{interval} days
//	until: until %{date}
func Parse(data []byte) (*Templates, error) {
	var t Templates
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBundle, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadFile reads and parses a single bundle file.
func LoadFile(name string) (*Templates, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading bundle %q: %w", name, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing bundle %q: %w", name, err)
	}
	return t, nil
}

// LoadFS registers every {tag}.yaml or {tag}.yml file found at the root of
// fsys into r. Subdirectories are ignored.
func LoadFS(r *Registry, fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("listing bundles: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		data, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return fmt.Errorf("reading bundle %q: %w", entry.Name(), err)
		}
		t, err := Parse(data)
		if err != nil {
			return fmt.Errorf("parsing bundle %q: %w", entry.Name(), err)
		}

		tag := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		if err := r.Register(tag, t); err != nil {
			return err
		}
	}
	return nil
}
