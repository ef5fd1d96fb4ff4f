package assets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderForType(t *testing.T) {
	tests := []struct {
		typeHint string
		want     Folder
	}{
		{"poster", FolderPosters},
		{"", FolderProducts},
		{"product", FolderProducts},
		{"POSTER", FolderProducts},
		{"banner", FolderProducts},
	}
	for _, tt := range tests {
		t.Run("hint="+tt.typeHint, func(t *testing.T) {
			assert.Equal(t, tt.want, FolderForType(tt.typeHint))
		})
	}
}

func TestNewKey(t *testing.T) {
	k := NewKey(FolderPosters, 1700000000000, "banner.jpg")
	assert.Equal(t, "posters/1700000000000-banner.jpg", k.String())

	k = NewKey(FolderForType(""), 1700000000000, "banner.jpg")
	assert.Equal(t, "products/1700000000000-banner.jpg", k.String())
}

func TestNewKey_UniqueAcrossClockTicks(t *testing.T) {
	seen := map[string]bool{}
	for millis := int64(1700000000000); millis < 1700000000100; millis++ {
		k := NewKey(FolderProducts, millis, "car.jpg").String()
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("posters/1700000000000-banner.jpg")
	require.NoError(t, err)
	assert.Equal(t, FolderPosters, k.Folder)
	assert.Equal(t, "1700000000000-banner.jpg", k.Filename)

	// round trip
	assert.Equal(t, "posters/1700000000000-banner.jpg", k.String())
}

func TestParseKey_Malformed(t *testing.T) {
	for _, raw := range []string{"", "noslash", "/leading", "trailing/"} {
		t.Run(fmt.Sprintf("raw=%q", raw), func(t *testing.T) {
			_, err := ParseKey(raw)
			assert.Error(t, err)
		})
	}
}

func TestParseKey_FilenameWithSlash(t *testing.T) {
	k, err := ParseKey("products/nested/name.jpg")
	require.NoError(t, err)
	assert.Equal(t, FolderProducts, k.Folder)
	assert.Equal(t, "nested/name.jpg", k.Filename)
}
