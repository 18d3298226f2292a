package analysis

import (
	"fmt"
	"sync"
)

// EngineFactory is a function type that creates an Engine for a resource type
type EngineFactory func() (*Engine, error)

// Registry manages engine factories per resource type
type Registry interface {
	// Register adds a new engine factory for a resource type
	Register(resource string, factory EngineFactory) error
	// Create instantiates an engine for the specified resource type
	Create(resource string) (*Engine, error)
	// ListResources returns a list of registered resource types
	ListResources() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]EngineFactory
}

// NewRegistry creates a new engine registry
func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]EngineFactory),
	}
}

func (r *registry) Register(resource string, factory EngineFactory) error {
	if resource == "" {
		return fmt.Errorf("resource type cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[resource]; exists {
		return fmt.Errorf("resource type %q is already registered", resource)
	}

	r.factories[resource] = factory
	return nil
}

func (r *registry) Create(resource string) (*Engine, error) {
	r.mu.RLock()
	factory, exists := r.factories[resource]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("resource type %q is not registered", resource)
	}

	return factory()
}

func (r *registry) ListResources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resources := make([]string, 0, len(r.factories))
	for resource := range r.factories {
		resources = append(resources, resource)
	}
	return resources
}
