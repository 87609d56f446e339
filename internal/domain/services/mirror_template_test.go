package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandMirrorTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		file     string
		want     string
	}{
		{
			name:     "listing",
			template: "https://mirror.example.org/{type}/{version}/{file}",
			want:     "https://mirror.example.org/nightly/20240101/",
		},
		{
			name:     "file",
			template: "https://mirror.example.org/{type}/{version}/{file}",
			file:     "nightly_20240101-builds-Linux.tar.gz",
			want:     "https://mirror.example.org/nightly/20240101/nightly_20240101-builds-Linux.tar.gz",
		},
		{
			name:     "repeated fields",
			template: "ftp://ftp.example.org/{type}/{version}/{type}_{file}",
			file:     "a.zip",
			want:     "ftp://ftp.example.org/nightly/20240101/nightly_a.zip",
		},
		{
			name:     "escaped braces",
			template: "https://mirror.example.org/{{literal}}/{version}",
			want:     "https://mirror.example.org/{literal}/20240101",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandMirrorTemplate(tt.template, NightlyMirrorType, "20240101", tt.file)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateMirrorTemplate(t *testing.T) {
	assert.NoError(t, ValidateMirrorTemplate("https://a.example.org/{type}/{version}/{file}"))
	assert.NoError(t, ValidateMirrorTemplate("https://a.example.org/static"))
	assert.NoError(t, ValidateMirrorTemplate("https://a.example.org/{{x}}/{file}"))

	assert.Error(t, ValidateMirrorTemplate(""))
	assert.ErrorContains(t, ValidateMirrorTemplate("https://a.example.org/{arch}/{file}"), "{arch}")
	assert.ErrorContains(t, ValidateMirrorTemplate("https://a.example.org/{file"), "unbalanced")
}

func TestNightlyFileURLs(t *testing.T) {
	templates := []string{
		"https://one.example.org/{type}/{version}/{file}",
		"https://two.example.org/{type}/{version}/{file}",
		"https://three.example.org/{type}/{version}/{file}",
	}

	primary, mirrors := NightlyFileURLs(templates, "1.0.0", "nightly_1.0.0-builds-Linux.tar.gz")

	assert.Equal(t, "https://one.example.org/nightly/1.0.0/nightly_1.0.0-builds-Linux.tar.gz", primary)
	require.Len(t, mirrors, 2)
	assert.Equal(t, "https://two.example.org/nightly/1.0.0/nightly_1.0.0-builds-Linux.tar.gz", mirrors[0])
	assert.Equal(t, "https://three.example.org/nightly/1.0.0/nightly_1.0.0-builds-Linux.tar.gz", mirrors[1])
	assert.NotContains(t, mirrors, primary)
}

func TestNightlyFileURLs_SingleMirror(t *testing.T) {
	primary, mirrors := NightlyFileURLs([]string{"https://one.example.org/{file}"}, "1.0.0", "f.zip")
	assert.Equal(t, "https://one.example.org/f.zip", primary)
	assert.Empty(t, mirrors)
}

func TestNightlyListingURL(t *testing.T) {
	assert.Equal(t, "https://one.example.org/nightly/1.0.0/",
		NightlyListingURL("https://one.example.org/{type}/{version}/{file}", "1.0.0"))
}

func TestNightlyFileURLs_DuplicateMirrors(t *testing.T) {
	templates := []string{
		"https://one.example.org/{file}",
		"https://two.example.org/{file}",
		"https://one.example.org/{file}",
		"https://two.example.org/{file}",
	}

	primary, mirrors := NightlyFileURLs(templates, "1.0.0", "f.zip")
	assert.Equal(t, "https://one.example.org/f.zip", primary)
	assert.Equal(t, []string{"https://two.example.org/f.zip"}, mirrors)
}
