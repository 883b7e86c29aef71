package pipeline

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/san-kum/efield/internal/config"
)

var ErrUnknownPipeline = errors.New("pipeline: unknown pipeline")

type Runner func(cfg *config.Config, logger *log.Logger) (*Result, error)

type Registry struct {
	runners map[string]Runner
	order   []string
}

func NewRegistry() *Registry {
	r := &Registry{runners: make(map[string]Runner)}
	r.Register(NameField, FieldDirect)
	r.Register(NamePotential, PotentialGradient)
	return r
}

// Register adds or replaces a runner. Names keep their first registration
// order.
func (r *Registry) Register(name string, fn Runner) {
	if _, ok := r.runners[name]; !ok {
		r.order = append(r.order, name)
	}
	r.runners[name] = fn
}

func (r *Registry) Get(name string) (Runner, error) {
	fn, ok := r.runners[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPipeline, name, r.order)
	}
	return fn, nil
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// RunAll runs every registered pipeline in registration order.
func (r *Registry) RunAll(cfg *config.Config, logger *log.Logger) ([]*Result, error) {
	results := make([]*Result, 0, len(r.order))
	for _, name := range r.order {
		res, err := r.runners[name](cfg, logger)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
