package uuidprovider

import "github.com/google/uuid"

// Provider generates identifiers that are unique across calls. The merged
// report's suite forest gets a freshly generated identifier on every merge.
type Provider interface {
	NewIdentifier() string
}

type provider struct{}

// NewProvider ...
func NewProvider() Provider {
	return provider{}
}

func (provider) NewIdentifier() string {
	return uuid.NewString()
}
