package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetFilter_Ignore(t *testing.T) {
	f, err := NewAssetFilter([]string{"*.sha256", "*-debug-*", "fs2_open_?.?-builds-Win32*"})
	require.NoError(t, err)

	tests := map[string]bool{
		"fs2_open_3.8-builds-Linux.tar.gz":        false,
		"fs2_open_3.8-builds-Linux.tar.gz.sha256": true,
		"fs2_open_3.8-builds-x64-debug-AVX.zip":   true,
		"fs2_open_3.8-builds-Win32.zip":           true,
		"fs2_open_3.10-builds-Win32.zip":          false,
		"fs2_open_3.8-source-full.tar.gz":         false,
	}
	for name, want := range tests {
		assert.Equal(t, want, f.Ignore(name), name)
	}
	assert.Equal(t, []string{"*.sha256", "*-debug-*", "fs2_open_?.?-builds-Win32*"}, f.Patterns())
}

func TestAssetFilter_Empty(t *testing.T) {
	f, err := NewAssetFilter(nil)
	require.NoError(t, err)
	assert.False(t, f.Ignore("anything"))
}

func TestNewAssetFilter_Invalid(t *testing.T) {
	_, err := NewAssetFilter([]string{"[unterminated"})
	assert.ErrorContains(t, err, "invalid ignore pattern")
}
