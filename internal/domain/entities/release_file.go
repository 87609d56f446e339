// Package entities defines core domain models and data structures.
package entities

// ReleaseFile represents a downloadable binary or nightly build artifact
type ReleaseFile struct {
	Name       string   `json:"name" yaml:"name"`
	PrimaryURL string   `json:"primary_url" yaml:"primary_url"`
	Platform   string   `json:"platform" yaml:"platform"`
	Variant    *string  `json:"variant,omitempty" yaml:"variant,omitempty"` // nil when the name carries no variant
	Mirrors    []string `json:"mirrors" yaml:"mirrors"`
}

// NewReleaseFile creates a release file, copying mirrors so the record owns its slice
func NewReleaseFile(name, primaryURL, platform string, variant *string, mirrors []string) ReleaseFile {
	owned := make([]string, 0, len(mirrors))
	owned = append(owned, mirrors...)

	var v *string
	if variant != nil {
		value := *variant
		v = &value
	}

	return ReleaseFile{
		Name:       name,
		PrimaryURL: primaryURL,
		Platform:   platform,
		Variant:    v,
		Mirrors:    owned,
	}
}

// HasVariant reports whether the artifact name carried a variant
func (f ReleaseFile) HasVariant() bool {
	return f.Variant != nil
}

// VariantOrEmpty returns the variant, or "" when absent
func (f ReleaseFile) VariantOrEmpty() string {
	if f.Variant == nil {
		return ""
	}
	return *f.Variant
}

// URLs returns the primary URL followed by all mirrors in priority order
func (f ReleaseFile) URLs() []string {
	urls := make([]string, 0, len(f.Mirrors)+1)
	urls = append(urls, f.PrimaryURL)
	return append(urls, f.Mirrors...)
}

// SourceFile represents a source archive; source archives are not mirrored
type SourceFile struct {
	Name  string `json:"name" yaml:"name"`
	URL   string `json:"url" yaml:"url"`
	Group string `json:"group" yaml:"group"`
}
