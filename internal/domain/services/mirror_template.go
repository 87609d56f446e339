package services

import (
	"fmt"
	"regexp"
	"strings"
)

// NightlyMirrorType is the {type} value used for nightly build mirrors
const NightlyMirrorType = "nightly"

var templateFieldPattern = regexp.MustCompile(`\{([^{}]*)\}`)

var allowedTemplateFields = map[string]bool{
	"type":    true,
	"version": true,
	"file":    true,
}

// ExpandMirrorTemplate substitutes {type}, {version} and {file} in a mirror
// URL template. {{ and }} produce literal braces.
func ExpandMirrorTemplate(template, releaseType, version, file string) string {
	r := strings.NewReplacer(
		"{{", "{",
		"}}", "}",
		"{type}", releaseType,
		"{version}", version,
		"{file}", file,
	)
	return r.Replace(template)
}

// ValidateMirrorTemplate checks that a template references only known fields
func ValidateMirrorTemplate(template string) error {
	if strings.TrimSpace(template) == "" {
		return fmt.Errorf("mirror template is empty")
	}

	unescaped := strings.NewReplacer("{{", "", "}}", "").Replace(template)
	for _, m := range templateFieldPattern.FindAllStringSubmatch(unescaped, -1) {
		if !allowedTemplateFields[m[1]] {
			return fmt.Errorf("mirror template %q references unknown field {%s}", template, m[1])
		}
	}

	if strings.ContainsAny(templateFieldPattern.ReplaceAllString(unescaped, ""), "{}") {
		return fmt.Errorf("mirror template %q has unbalanced braces", template)
	}
	return nil
}

// NightlyListingURL returns the directory listing URL of a mirror
func NightlyListingURL(template, version string) string {
	return ExpandMirrorTemplate(template, NightlyMirrorType, version, "")
}

// NightlyFileURLs builds the download URL of file on every mirror, in mirror order.
// The first URL is the primary location; the rest are fallbacks. Mirrors that
// expand to an URL already produced are skipped.
func NightlyFileURLs(templates []string, version, file string) (string, []string) {
	var primary string
	fallbacks := make([]string, 0, len(templates))
	seen := make(map[string]bool, len(templates))
	for i, template := range templates {
		u := ExpandMirrorTemplate(template, NightlyMirrorType, version, file)
		if seen[u] {
			continue
		}
		seen[u] = true
		if i == 0 {
			primary = u
			continue
		}
		fallbacks = append(fallbacks, u)
	}
	return primary, fallbacks
}
