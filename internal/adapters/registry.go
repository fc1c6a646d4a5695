package adapters

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jpp0ca/MovieCatalog-API/internal/ports"
)

// ProviderRegistry maps provider names to their MovieProvider implementations.
// It is safe for concurrent use.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]ports.MovieProvider
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]ports.MovieProvider),
	}
}

// Register adds a provider to the registry, keyed by its Name().
func (r *ProviderRegistry) Register(provider ports.MovieProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[provider.Name()] = provider
}

// Get returns the provider for the given name, or an error if not found.
func (r *ProviderRegistry) Get(name string) (ports.MovieProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown movie provider: %s", name)
	}
	return provider, nil
}

// Available returns the sorted names of all registered providers.
func (r *ProviderRegistry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
