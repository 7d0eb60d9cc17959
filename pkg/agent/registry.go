package agent

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps agent names to their logics. Populated at startup,
// read-only afterwards.
type Registry struct {
	mu     sync.RWMutex
	logics map[string]AgentLogic
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{logics: make(map[string]AgentLogic)}
}

// Register adds a logic under its name. Duplicate names are a
// configuration error.
func (r *Registry) Register(logic AgentLogic) error {
	if logic == nil || logic.Name() == "" {
		return fmt.Errorf("agent logic must have a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.logics[logic.Name()]; exists {
		return fmt.Errorf("agent %s already registered", logic.Name())
	}
	r.logics[logic.Name()] = logic
	return nil
}

// Get returns the logic for an agent name.
func (r *Registry) Get(name string) (AgentLogic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logic, ok := r.logics[name]
	if !ok {
		return nil, fmt.Errorf("no agent registered under %s", name)
	}
	return logic, nil
}

// Names returns the registered agent names sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.logics))
	for name := range r.logics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
