package templates

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages available project templates
type Registry struct {
	templates map[string]*Template
	mutex     sync.RWMutex
}

// NewRegistry creates a new template registry
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]*Template),
	}
}

// Register registers a template in the registry
func (r *Registry) Register(tmpl *Template) error {
	if err := tmpl.Validate(); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.templates[tmpl.Name]; exists {
		return fmt.Errorf("template %s already registered", tmpl.Name)
	}

	r.templates[tmpl.Name] = tmpl
	return nil
}

// Get retrieves a template by name
func (r *Registry) Get(name string) (*Template, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	tmpl, exists := r.templates[name]
	if !exists {
		return nil, &NotFoundError{Name: name}
	}

	return tmpl, nil
}

// List returns all registered templates sorted by name
func (r *Registry) List() []*Template {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	templates := make([]*Template, 0, len(r.templates))
	for _, tmpl := range r.templates {
		templates = append(templates, tmpl)
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})

	return templates
}

// Names returns the sorted names of all registered templates
func (r *Registry) Names() []string {
	list := r.List()
	names := make([]string, len(list))
	for i, tmpl := range list {
		names[i] = tmpl.Name
	}
	return names
}

// Exists checks if a template exists
func (r *Registry) Exists(name string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, exists := r.templates[name]
	return exists
}

// NotFoundError is returned for an unknown template name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %s not found", e.Name)
}

// Default registry instance
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the default template registry
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// SetDefaultRegistry sets the default template registry (useful for testing)
func SetDefaultRegistry(r *Registry) {
	defaultRegistry = r
}

// RegisterBuiltinTemplates registers all built-in templates. Templates that
// are already registered are left alone, so it is safe to call more than once.
func RegisterBuiltinTemplates() error {
	templates := []*Template{
		NewDefaultTemplate(),
	}

	for _, tmpl := range templates {
		if defaultRegistry.Exists(tmpl.Name) {
			continue
		}
		if err := defaultRegistry.Register(tmpl); err != nil {
			return fmt.Errorf("failed to register template %s: %w", tmpl.Name, err)
		}
	}

	return nil
}
