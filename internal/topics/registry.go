package topics

import "fmt"

// Registry maps topic ids to strategies, preserving registration order
// for stable UI listings.
type Registry struct {
	order      []string
	strategies map[string]Strategy
}

// NewRegistry builds a registry from the given strategies, in order.
func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{strategies: make(map[string]Strategy, len(strategies))}
	for _, s := range strategies {
		id := s.Metadata().ID
		if _, dup := r.strategies[id]; dup {
			panic(fmt.Sprintf("topics: duplicate registration for %q", id))
		}
		r.order = append(r.order, id)
		r.strategies[id] = s
	}
	return r
}

// Default returns a registry holding all shipped topic strategies.
func Default() *Registry {
	return NewRegistry(
		possessivpronomen{},
		prepositionen{},
	)
}

// Lookup resolves a topic id. An unknown id is a caller defect, not a
// user condition: it returns an error rather than silently defaulting.
func (r *Registry) Lookup(id string) (Strategy, error) {
	s, ok := r.strategies[id]
	if !ok {
		return nil, fmt.Errorf("topic strategy not found for id %q", id)
	}
	return s, nil
}

// ListAll returns the metadata of every registered topic in registration
// order.
func (r *Registry) ListAll() []Topic {
	out := make([]Topic, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.strategies[id].Metadata())
	}
	return out
}
