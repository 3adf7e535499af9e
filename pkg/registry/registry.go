package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/twoway/pkg/domain"
)

// ErrUnknownProgram is returned when a program name is not registered.
var ErrUnknownProgram = errors.New("unknown program")

// Registry manages the available programs.
type Registry struct {
	mu       sync.RWMutex
	programs map[string]domain.Program
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		programs: make(map[string]domain.Program),
	}
}

// Register adds a program to the registry.
// If a program with the same name exists, it is overwritten.
func (r *Registry) Register(p domain.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.programs[p.Name] = p
}

// Get looks up a program by name.
func (r *Registry) Get(name string) (domain.Program, error) {
	r.mu.RLock()
	p, ok := r.programs[name]
	r.mu.RUnlock()

	if !ok {
		return domain.Program{}, fmt.Errorf("%w: %q", ErrUnknownProgram, name)
	}
	return p, nil
}

// Names returns the registered program names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.programs))
	for name := range r.programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
