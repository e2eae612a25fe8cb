package suite

import (
	"errors"
	"fmt"
)

var (
	// Modules holds the suite-configuration modules loaded for this process.
	Modules = NewRegistry()

	ErrModuleNotFound = errors.New("suite config module not found")
)

// Registry is a name-to-module mapping with process lifetime. It does no
// locking; callers that may load concurrently must serialize access.
type Registry struct {
	modules map[string]*Module
}

func NewRegistry() *Registry {
	return &Registry{
		modules: map[string]*Module{},
	}
}

// Add binds the module under its name, overwriting any previous binding.
func (r *Registry) Add(module *Module) {
	r.modules[module.name] = module
}

func (r *Registry) GetByName(name string) (*Module, error) {
	if module, ok := r.modules[name]; ok {
		return module, nil
	}
	return nil, fmt.Errorf("%s: %w", name, ErrModuleNotFound)
}

func (r *Registry) GetAll() []*Module {
	var list []*Module
	for _, module := range r.modules {
		list = append(list, module)
	}
	return list
}
