// Package glob matches release asset names against shell-style patterns.
package glob

import (
	"fmt"

	"github.com/gobwas/glob"
)

// AssetFilter drops assets whose name matches any of its patterns
type AssetFilter struct {
	patterns []glob.Glob
	sources  []string
}

// NewAssetFilter compiles the patterns; * and ? and character classes are supported
func NewAssetFilter(patterns []string) (*AssetFilter, error) {
	f := &AssetFilter{}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		f.patterns = append(f.patterns, g)
		f.sources = append(f.sources, p)
	}
	return f, nil
}

// Ignore returns true if the asset name matches an ignore pattern
func (f *AssetFilter) Ignore(name string) bool {
	for _, g := range f.patterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Patterns returns the source patterns in configuration order
func (f *AssetFilter) Patterns() []string {
	out := make([]string, len(f.sources))
	copy(out, f.sources)
	return out
}
