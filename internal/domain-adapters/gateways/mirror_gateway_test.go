package gateways

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
)

const sampleListing = `<!DOCTYPE html>
<html>
<head><title>Index of /nightly/20240101</title></head>
<body>
<h1>Index of /nightly/20240101</h1>
<a href="../">Parent Directory</a>
<a href="nightly_20240101-builds-Linux.tar.gz">nightly_20240101-builds-Linux.tar.gz</a>
<a href="nightly_20240101-builds-x64-AVX.zip">nightly_20240101-builds-x64-AVX.zip</a>
<a class="file" href="nightly_20240101-source.tar.gz">source</a>
<a href="README.txt">README.txt</a>
<a href="nightly_">empty</a>
<a name="nightly_anchor">anchor without href</a>
<link href="nightly_stylesheet.css">
</body>
</html>`

func TestExtractNightlyLinks(t *testing.T) {
	files, err := ExtractNightlyLinks(strings.NewReader(sampleListing))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"nightly_20240101-builds-Linux.tar.gz",
		"nightly_20240101-builds-x64-AVX.zip",
		"nightly_20240101-source.tar.gz",
	}, files)
}

func TestExtractNightlyLinks_Empty(t *testing.T) {
	files, err := ExtractNightlyLinks(strings.NewReader("<html><body>nothing here</body></html>"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestExtractNightlyLinks_PlainText(t *testing.T) {
	files, err := ExtractNightlyLinks(strings.NewReader(`<a href="nightly_1-builds-Linux.tar.gz">x</a> trailing text`))
	require.NoError(t, err)
	assert.Equal(t, []string{"nightly_1-builds-Linux.tar.gz"}, files)
}

func TestMirrorGateway_ListFiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nightly/20240101/", r.URL.Path)
		_, _ = w.Write([]byte(sampleListing))
	}))
	defer server.Close()

	gateway := NewHTTPMirrorGateway(entities.HTTPConfig{})
	files, err := gateway.ListFiles(context.Background(), server.URL+"/nightly/20240101/")
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestMirrorGateway_ListFiles_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gateway := NewHTTPMirrorGateway(entities.HTTPConfig{})
	_, err := gateway.ListFiles(context.Background(), server.URL)
	require.Error(t, err)

	var statusErr *entities.HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestMirrorGateway_ListFiles_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	gateway := NewHTTPMirrorGateway(entities.HTTPConfig{})
	_, err := gateway.ListFiles(context.Background(), url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP request failed")
}
