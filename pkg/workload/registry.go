package workload

import (
	"fmt"
	"sort"
)

// Factory returns a new, empty document of one workload variant
type Factory func() Schema

// Registry maps workload types to the variant that decodes them
type Registry struct {
	factories map[WorkloadType]Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[WorkloadType]Factory),
	}
}

// Register adds a variant to the registry
func (r *Registry) Register(factory Factory) error {
	workloadType := factory().GetWorkloadType()
	if _, exists := r.factories[workloadType]; exists {
		return fmt.Errorf("workload type %s already registered", workloadType)
	}
	r.factories[workloadType] = factory
	return nil
}

// New returns an empty document for the given workload type
func (r *Registry) New(workloadType WorkloadType) (Schema, error) {
	factory, exists := r.factories[workloadType]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkloadType, workloadType)
	}
	return factory(), nil
}

// Types returns the registered workload types in name order
func (r *Registry) Types() []WorkloadType {
	types := make([]WorkloadType, 0, len(r.factories))
	for workloadType := range r.factories {
		types = append(types, workloadType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// DefaultRegistry creates a registry with every workload variant
func DefaultRegistry() *Registry {
	registry := NewRegistry()

	for _, factory := range []Factory{
		func() Schema { return &BasicContainerLoad{} },
		func() Schema { return &StatefulContainerLoad{} },
		func() Schema { return &BasicContainerRollout{} },
		func() Schema { return &MLInferenceLoad{} },
		func() Schema { return &OllamaInferenceLoad{} },
	} {
		if err := registry.Register(factory); err != nil {
			panic(err)
		}
	}

	return registry
}
