package i18n

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// Registry maps BCP 47 language tags to bundles. Lookups pick the closest
// registered tag; they never merge bundles.
type Registry struct {
	mu      sync.RWMutex
	tags    []language.Tag
	bundles []*Templates
	matcher language.Matcher
}

func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns a registry holding the built-in English and
// Russian bundles.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register("en", English)
	_ = r.Register("ru", Russian)
	return r
}

// Register adds or replaces the bundle for tag.
func (r *Registry) Register(tag string, t *Templates) error {
	parsed, err := language.Parse(tag)
	if err != nil {
		return fmt.Errorf("registering bundle %q: %w", tag, err)
	}
	if t == nil {
		return fmt.Errorf("%w: nil bundle for %q", ErrInvalidBundle, tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.tags {
		if existing == parsed {
			r.bundles[i] = t
			return nil
		}
	}
	r.tags = append(r.tags, parsed)
	r.bundles = append(r.bundles, t)
	r.matcher = language.NewMatcher(r.tags)
	return nil
}

// Lookup returns the bundle best matching tag.
func (r *Registry) Lookup(tag string) (*Templates, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", ErrUnknownLanguage, tag, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.matcher == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, tag)
	}
	_, idx, conf := r.matcher.Match(parsed)
	if conf == language.No {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, tag)
	}
	return r.bundles[idx], nil
}

// Tags lists registered tags in registration order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.tags))
	for i, t := range r.tags {
		out[i] = t.String()
	}
	return out
}
