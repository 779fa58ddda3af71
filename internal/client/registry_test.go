package client

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryAcquireReturnsUniqueNames(t *testing.T) {
	registry := NewRegistry(&RegistryConfig{Seed: 42})

	pattern := regexp.MustCompile(`^bot[1-9]\d{0,3}$`)
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		name := registry.Acquire()
		assert.Regexp(t, pattern, name)

		_, dup := seen[name]
		assert.False(t, dup, "name %q handed out twice", name)
		seen[name] = struct{}{}
	}
}

func TestRegistryReleaseRecyclesName(t *testing.T) {
	registry := NewRegistry(&RegistryConfig{Seed: 42})

	name := registry.Acquire()
	registry.Release(name)

	assert.Empty(t, registry.inUse)
}

func TestRegistryReleaseIgnoresForeignNames(t *testing.T) {
	registry := NewRegistry(&RegistryConfig{Seed: 42})
	name := registry.Acquire()

	registry.Release("not-a-bot")
	registry.Release("botXYZ")

	assert.Len(t, registry.inUse, 1)
	registry.Release(name)
	assert.Empty(t, registry.inUse)
}
