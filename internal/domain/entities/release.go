package entities

// ReleaseKind distinguishes tagged releases from nightly builds
type ReleaseKind string

// Release kinds
const (
	KindTagged  ReleaseKind = "tagged"
	KindNightly ReleaseKind = "nightly"
)

// NightlyTagPrefix marks tags that are resolved through the mirror listings
const NightlyTagPrefix = "nightly_"

// TaggedRelease is the result of resolving a GitHub release by tag
type TaggedRelease struct {
	Tag         string
	Binaries    []ReleaseFile
	Sources     map[string]SourceFile
	Diagnostics Diagnostics
}

// NightlyRelease is the result of resolving a nightly build from the mirrors
type NightlyRelease struct {
	Tag     string
	Version string
	// ListingURL is the directory listing that was accepted, empty when every mirror failed
	ListingURL  string
	Files       []ReleaseFile
	Diagnostics Diagnostics
}

// Resolution is the release-type independent view handed to callers
type Resolution struct {
	Kind        ReleaseKind           `json:"kind" yaml:"kind"`
	Tag         string                `json:"tag" yaml:"tag"`
	Version     string                `json:"version,omitempty" yaml:"version,omitempty"`
	Binaries    []ReleaseFile         `json:"binaries" yaml:"binaries"`
	Sources     map[string]SourceFile `json:"sources,omitempty" yaml:"sources,omitempty"`
	Diagnostics Diagnostics           `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Resolution converts a tagged release into the unified view
func (r *TaggedRelease) Resolution() *Resolution {
	return &Resolution{
		Kind:        KindTagged,
		Tag:         r.Tag,
		Binaries:    r.Binaries,
		Sources:     r.Sources,
		Diagnostics: r.Diagnostics,
	}
}

// Resolution converts a nightly release into the unified view
func (r *NightlyRelease) Resolution() *Resolution {
	return &Resolution{
		Kind:        KindNightly,
		Tag:         r.Tag,
		Version:     r.Version,
		Binaries:    r.Files,
		Diagnostics: r.Diagnostics,
	}
}

// IsEmpty returns true if the resolution found no artifacts at all
func (r *Resolution) IsEmpty() bool {
	return len(r.Binaries) == 0 && len(r.Sources) == 0
}
