package s3

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageKey(t *testing.T) {
	t.Parallel()

	key := storageKey("car-listings", "front.jpg")

	assert.True(t, strings.HasPrefix(key, "car-listings/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	other := storageKey("car-listings", "front.jpg")
	assert.NotEqual(t, key, other)
}

func TestStorageKey_NoExtension(t *testing.T) {
	t.Parallel()

	key := storageKey("car-listings", "photo")

	assert.True(t, strings.HasPrefix(key, "car-listings/"))
	assert.False(t, strings.Contains(key, ".."))
}
