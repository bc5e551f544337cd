package agent

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownAgent indicates a lookup for an id the registry does not hold.
var ErrUnknownAgent = errors.New("unknown agent")

// Registry is the static agent table populated once at startup. Agents are
// shared read-only references; the registry is not mutated after Freeze.
type Registry struct {
	agents map[ID]Agent
	frozen bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[ID]Agent)}
}

// Register adds an agent. Registering after Freeze or re-registering an id
// is a programming error and fails loudly.
func (r *Registry) Register(a Agent) error {
	if r.frozen {
		return fmt.Errorf("registry is frozen, cannot register %s", a.ID())
	}
	if _, ok := r.agents[a.ID()]; ok {
		return fmt.Errorf("agent %s already registered", a.ID())
	}
	r.agents[a.ID()] = a
	return nil
}

// Freeze marks registration complete.
func (r *Registry) Freeze() { r.frozen = true }

// Get returns the agent for an id.
func (r *Registry) Get(id ID) (Agent, error) {
	a, ok := r.agents[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, id)
	}
	return a, nil
}

// Has reports whether the id is registered.
func (r *Registry) Has(id ID) bool {
	_, ok := r.agents[id]
	return ok
}

// Len returns the number of registered agents.
func (r *Registry) Len() int { return len(r.agents) }

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.agents))
	for id := range r.agents {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
