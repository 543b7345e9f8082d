// Package provider hosts deployment compute providers and their registry.
// A provider owns the lifecycle of worker compute for a deployment: creating
// it on first release, updating it on later releases and waking it up when
// jobs queue against an idle service.
package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/differentialHQ/differential/internal/domain"
)

// Registry resolves providers by name. Lookup is read-heavy; registration
// happens once at boot.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]domain.DeploymentProvider
}

// NewRegistry builds a registry preloaded with the given providers.
func NewRegistry(ps ...domain.DeploymentProvider) *Registry {
	r := &Registry{providers: make(map[string]domain.DeploymentProvider, len(ps))}
	for _, p := range ps {
		r.Register(p)
	}
	return r
}

// Register adds or replaces a provider under its Name().
func (r *Registry) Register(p domain.DeploymentProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name()] = p
}

// Lookup returns the provider registered under name.
func (r *Registry) Lookup(name string) (domain.DeploymentProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: deployment provider %q", domain.ErrNotFound, name)
	}
	return p, nil
}

// Names lists registered provider names in stable order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.providers))
	for name := range r.providers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
