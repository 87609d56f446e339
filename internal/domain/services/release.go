// Package services holds the release classification rules.
package services

import (
	"regexp"
	"strings"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
)

// Asset name patterns. Names are matched from the start; trailing text is free.
var (
	binaryAssetPattern  = regexp.MustCompile(`^fs2_open_.*-builds-([^.-]*)(-([^.]*))?`)
	sourceAssetPattern  = regexp.MustCompile(`^fs2_open_.*-source-([^.]*)?`)
	nightlyTagPattern   = regexp.MustCompile(`^nightly_(.*)`)
	nightlyBuildPattern = regexp.MustCompile(`^nightly_.*-builds-([^.]+)`)
)

// BinaryMatch is the capture of a binary build asset name
type BinaryMatch struct {
	Platform string
	Variant  *string
}

// SourceMatch is the capture of a source archive asset name
type SourceMatch struct {
	Group string
}

// NightlyMatch is the capture of a nightly build file name
type NightlyMatch struct {
	Group string
}

// MatchBinaryAsset matches names like fs2_open_3.8-builds-x64-SSE2.7z.
// Platform is returned as written in the name; see NormalizeBinaryPlatform.
func MatchBinaryAsset(name string) (BinaryMatch, bool) {
	idx := binaryAssetPattern.FindStringSubmatchIndex(name)
	if idx == nil {
		return BinaryMatch{}, false
	}

	match := BinaryMatch{Platform: name[idx[2]:idx[3]]}
	if idx[6] >= 0 {
		variant := name[idx[6]:idx[7]]
		match.Variant = &variant
	}
	return match, true
}

// MatchSourceAsset matches names like fs2_open_3.8-source-full.tar.gz
func MatchSourceAsset(name string) (SourceMatch, bool) {
	idx := sourceAssetPattern.FindStringSubmatchIndex(name)
	if idx == nil {
		return SourceMatch{}, false
	}

	var group string
	if idx[2] >= 0 {
		group = name[idx[2]:idx[3]]
	}
	return SourceMatch{Group: group}, true
}

// MatchNightlyBuild matches names like nightly_20240101-builds-Linux.tar.gz
func MatchNightlyBuild(name string) (NightlyMatch, bool) {
	m := nightlyBuildPattern.FindStringSubmatch(name)
	if m == nil {
		return NightlyMatch{}, false
	}
	return NightlyMatch{Group: m[1]}, true
}

// ParseNightlyTag extracts the version from a nightly_<version> tag
func ParseNightlyTag(tag string) (string, error) {
	m := nightlyTagPattern.FindStringSubmatch(tag)
	if m == nil {
		return "", &entities.MalformedTagError{Tag: tag, Expected: entities.NightlyTagPrefix + "<version>"}
	}
	return m[1], nil
}

// IsNightlyTag returns true if the tag names a nightly build
func IsNightlyTag(tag string) bool {
	return strings.HasPrefix(tag, entities.NightlyTagPrefix)
}

// NormalizeBinaryPlatform maps the Visual Studio platform name to the display name.
// Only the exact value x64 is rewritten.
func NormalizeBinaryPlatform(platform string) string {
	if platform == "x64" {
		return "Win64"
	}
	return platform
}

// NormalizeNightlyGroup rewrites x64 anywhere in the group to Win64, and the
// exact group Mac to MacOSX. MacMini and similar names are left alone.
func NormalizeNightlyGroup(group string) string {
	group = strings.ReplaceAll(group, "x64", "Win64")
	if group == "Mac" {
		return "MacOSX"
	}
	return group
}
