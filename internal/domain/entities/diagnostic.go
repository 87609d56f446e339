package entities

// DiagnosticKind classifies a non-fatal condition met while resolving a release
type DiagnosticKind string

// Diagnostic kinds
const (
	DiagMirrorUnavailable  DiagnosticKind = "mirror_unavailable"
	DiagNoMirrorsAvailable DiagnosticKind = "no_mirrors_available"
	DiagUnrecognizedAsset  DiagnosticKind = "unrecognized_asset"
	DiagUnrecognizedFile   DiagnosticKind = "unrecognized_file"
	DiagIgnoredAsset       DiagnosticKind = "ignored_asset"
)

// Diagnostic is a reported, non-fatal condition
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind" yaml:"kind"`
	Subject string         `json:"subject" yaml:"subject"` // URL or file name the condition applies to
	Message string         `json:"message" yaml:"message"`
}

// Diagnostics is an ordered collection of reported conditions
type Diagnostics []Diagnostic

// Of returns the diagnostics of the given kind, in report order
func (d Diagnostics) Of(kind DiagnosticKind) Diagnostics {
	var out Diagnostics
	for _, diag := range d {
		if diag.Kind == kind {
			out = append(out, diag)
		}
	}
	return out
}

// Has returns true if at least one diagnostic of the given kind was reported
func (d Diagnostics) Has(kind DiagnosticKind) bool {
	for _, diag := range d {
		if diag.Kind == kind {
			return true
		}
	}
	return false
}
