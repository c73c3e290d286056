package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresetsCatalog(t *testing.T) {
	catalog := Presets()
	assert.Len(t, catalog, 15)

	// Spot-check well-known entries.
	assert.Equal(t, Preset{"TCP Traffic", "tcp"}, catalog[0])
	assert.Equal(t, "tcp port 80 or tcp port 8080", catalog[2].Filter)
	assert.Equal(t, "udp port 53 or tcp port 53", catalog[4].Filter)

	last := catalog[len(catalog)-1]
	assert.Equal(t, "Clear Filter", last.Name)
	assert.Empty(t, last.Filter, "clear entry must resolve to no filter")
}

func TestPresetNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Presets() {
		assert.False(t, seen[p.Name], "duplicate preset name %q", p.Name)
		seen[p.Name] = true
	}
}
