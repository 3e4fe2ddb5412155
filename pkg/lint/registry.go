package lint

import (
	"maps"
	"slices"
	"sync"
)

// Registry maps rule IDs, names and aliases to rules. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	rules   map[string]Rule   // by ID
	names   map[string]string // rule name -> ID
	aliases map[string]string // alias -> ID
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		rules:   make(map[string]Rule),
		names:   make(map[string]string),
		aliases: make(map[string]string),
	}
}

// Register adds rule, replacing any rule with the same ID.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.rules[rule.ID()]; ok {
		delete(r.names, old.Name())
	}
	r.rules[rule.ID()] = rule
	r.names[rule.Name()] = rule.ID()
}

// RegisterAlias makes alias resolve to ruleID, e.g. a Checkstyle check
// name. The rule does not have to be registered yet.
func (r *Registry) RegisterAlias(alias, ruleID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = ruleID
}

// Get looks key up as an ID, then as a rule name.
func (r *Registry) Get(key string) (Rule, bool) {
	if rule, ok := r.GetByID(key); ok {
		return rule, true
	}
	return r.GetByName(key)
}

// GetByID looks up a rule by ID only.
func (r *Registry) GetByID(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[id]
	return rule, ok
}

// GetByName looks up a rule by name only.
func (r *Registry) GetByName(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[r.names[name]]
	return rule, ok
}

// Resolve maps an ID, name or alias to the canonical ID and its rule.
func (r *Registry) Resolve(key string) (string, Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range []string{key, r.names[key], r.aliases[key]} {
		if rule, ok := r.rules[id]; ok {
			return id, rule, true
		}
	}
	return "", nil, false
}

// Rules returns every registered rule ordered by ID.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.rules))
	for _, id := range slices.Sorted(maps.Keys(r.rules)) {
		result = append(result, r.rules[id])
	}
	return result
}

// IDs returns the registered rule IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.rules))
}

// AliasesFor returns the aliases of ruleID in sorted order.
func (r *Registry) AliasesFor(ruleID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []string
	for alias, id := range r.aliases {
		if id == ruleID {
			result = append(result, alias)
		}
	}
	slices.Sort(result)
	return result
}

// DefaultRegistry holds the built-in rules; rules.Register populates it.
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
