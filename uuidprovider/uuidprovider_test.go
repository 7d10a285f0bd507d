package uuidprovider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GivenProvider_WhenGeneratingIdentifiers_ThenTheyAreNonEmptyAndUnique(t *testing.T) {
	// Given
	provider := NewProvider()

	// When
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		identifier := provider.NewIdentifier()

		// Then
		assert.NotEmpty(t, identifier)
		assert.False(t, seen[identifier], "identifier generated twice: %s", identifier)
		seen[identifier] = true
	}
}
