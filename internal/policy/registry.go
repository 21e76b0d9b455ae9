package policy

import (
	"embed"
	"fmt"
	"sync"

	"teamdocs/internal/domain/models"
	"teamdocs/internal/domain/services"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry maps team actions to the roles allowed to perform them
type Registry struct {
	actions map[services.Action][]models.Role
	mu      sync.RWMutex
}

// NewRegistry creates a registry from the embedded roles.yaml
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/roles.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read roles policy: %w", err)
	}
	return Parse(data)
}

// Parse builds a registry from policy YAML. Unknown roles, empty role
// lists and duplicate actions are rejected.
func Parse(data []byte) (*Registry, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roles policy: %w", err)
	}

	r := &Registry{actions: make(map[services.Action][]models.Role, len(file.Actions))}
	for _, rule := range file.Actions {
		if rule.Name == "" {
			return nil, fmt.Errorf("policy action without name")
		}
		action := services.Action(rule.Name)
		if _, dup := r.actions[action]; dup {
			return nil, fmt.Errorf("duplicate policy action %q", rule.Name)
		}
		if len(rule.Roles) == 0 {
			return nil, fmt.Errorf("policy action %q has no roles", rule.Name)
		}

		roles := make([]models.Role, 0, len(rule.Roles))
		for _, s := range rule.Roles {
			role, err := models.ParseRole(s)
			if err != nil {
				return nil, fmt.Errorf("policy action %q: %w", rule.Name, err)
			}
			roles = append(roles, role)
		}
		r.actions[action] = roles
	}

	return r, nil
}

// AllowedRoles returns the roles allowed to perform action
func (r *Registry) AllowedRoles(action services.Action) ([]models.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles, ok := r.actions[action]
	if !ok {
		return nil, fmt.Errorf("unknown action: %s", action)
	}
	return roles, nil
}
