package audience

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"commsagent/internal/domain/models"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry holds the communication profile for every stakeholder audience.
type Registry struct {
	profiles map[models.Audience]*Profile
	mu       sync.RWMutex
}

// NewRegistry creates a registry from the embedded YAML configuration.
// Every audience in the domain model must have a profile.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		profiles: make(map[models.Audience]*Profile),
	}

	if err := r.loadFile("config/audiences.yaml"); err != nil {
		return nil, fmt.Errorf("failed to load audience profiles: %w", err)
	}

	for _, a := range models.Audiences {
		if _, ok := r.profiles[a]; !ok {
			return nil, fmt.Errorf("no profile configured for audience %q", a)
		}
	}

	return r, nil
}

// loadFile loads one embedded profile YAML file into the registry.
func (r *Registry) loadFile(name string) error {
	data, err := configFiles.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	var doc struct {
		Audiences map[models.Audience]*Profile `yaml:"audiences"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range doc.Audiences {
		p.ID = id
		r.profiles[id] = p
	}

	return nil
}

// Get returns the profile for a specific audience.
func (r *Registry) Get(a models.Audience) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[a]
	if !ok {
		return nil, fmt.Errorf("unknown audience: %s", a)
	}
	return p, nil
}

// List returns all profiles in the domain model's presentation order.
func (r *Registry) List() []Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Profile, 0, len(r.profiles))
	for _, a := range models.Audiences {
		if p, ok := r.profiles[a]; ok {
			out = append(out, *p)
		}
	}
	return out
}
