package hamiltonian

import (
	"fmt"
	"sort"
)

type Registry struct {
	systems map[string]func() System
}

func NewRegistry() *Registry {
	r := &Registry{
		systems: make(map[string]func() System),
	}

	r.systems["oscillator"] = func() System { return NewHarmonicOscillator() }
	r.systems["pendulum"] = func() System { return NewPendulum() }
	r.systems["doublewell"] = func() System { return NewDoubleWell() }
	r.systems["onion"] = func() System { return NewOnion() }

	return r
}

func (r *Registry) Get(name string) (System, error) {
	fn, ok := r.systems[name]
	if !ok {
		return nil, fmt.Errorf("unknown system: %s (available: %v)", name, r.Names())
	}
	return fn(), nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.systems))
	for name := range r.systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
