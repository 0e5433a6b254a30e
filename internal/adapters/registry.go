package adapters

import "fmt"

// Adapter converts a document from one format to another. Adapters are
// pure: the same input always yields the same output.
type Adapter func(input string) string

// Pair identifies a directed conversion.
type Pair struct {
	From Format `json:"from" yaml:"from"`
	To   Format `json:"to" yaml:"to"`
}

func (p Pair) String() string {
	return fmt.Sprintf("%s->%s", p.From, p.To)
}

// Registry holds converters keyed by (from, to). Registration must finish
// before the registry is shared; lookups are read-only afterwards.
type Registry struct {
	adapters map[Pair]Adapter
}

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[Pair]Adapter)}
}

// Register installs fn for from -> to, replacing any previous adapter for the pair.
func (r *Registry) Register(from, to Format, fn Adapter) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: %s->%s uses an unknown format", ErrInvalidRegistration, from, to)
	}
	if from == to {
		return fmt.Errorf("%w: %s maps to itself", ErrInvalidRegistration, from)
	}
	if fn == nil {
		return fmt.Errorf("%w: nil adapter for %s->%s", ErrInvalidRegistration, from, to)
	}
	r.adapters[Pair{From: from, To: to}] = fn
	return nil
}

// Convert returns input unchanged when from == to. Otherwise it applies the
// adapter registered for exactly (from, to); conversions are never chained.
func (r *Registry) Convert(from, to Format, input string) (string, error) {
	if from == to {
		return input, nil
	}

	fn, ok := r.adapters[Pair{From: from, To: to}]
	if !ok {
		return "", fmt.Errorf("%w: %s->%s", ErrAdapterNotFound, from, to)
	}
	return fn(input), nil
}

// SupportedTargets lists formats reachable from from in one step.
func (r *Registry) SupportedTargets(from Format) []Format {
	targets := []Format{}
	for _, to := range formats {
		if _, ok := r.adapters[Pair{From: from, To: to}]; ok {
			targets = append(targets, to)
		}
	}
	return targets
}

// Pairs lists every registered conversion ordered by source then target.
func (r *Registry) Pairs() []Pair {
	pairs := []Pair{}
	for _, from := range formats {
		for _, to := range r.SupportedTargets(from) {
			pairs = append(pairs, Pair{From: from, To: to})
		}
	}
	return pairs
}
