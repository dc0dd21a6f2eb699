// file: internals/configs/config_test.go
package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMimeList(t *testing.T) {
	t.Run("empty falls back to defaults", func(t *testing.T) {
		assert.Equal(t, defaultAllowedMimeTypes, ParseMimeList(""))
		assert.Equal(t, defaultAllowedMimeTypes, ParseMimeList("  ,  , "))
	})

	t.Run("trims and lowercases", func(t *testing.T) {
		got := ParseMimeList(" Application/PDF , text/plain ")
		assert.Equal(t, []string{"application/pdf", "text/plain"}, got)
	})
}

func TestIsAllowedUploadMime(t *testing.T) {
	orig := AllowedUploadMimeTypes
	AllowedUploadMimeTypes = []string{"application/pdf", "application/msword"}
	defer func() { AllowedUploadMimeTypes = orig }()

	assert.True(t, IsAllowedUploadMime("application/pdf"))
	assert.True(t, IsAllowedUploadMime("Application/PDF"))
	assert.True(t, IsAllowedUploadMime("application/pdf; charset=binary"))
	assert.False(t, IsAllowedUploadMime("image/png"))
	assert.False(t, IsAllowedUploadMime(""))
}
