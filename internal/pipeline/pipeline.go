// Package pipeline runs the two field pipelines end to end, from charge
// placement to the arrays a figure is drawn from.
//
//   - [FieldDirect] evaluates the Coulomb field of every charge directly.
//   - [PotentialGradient] evaluates the scalar potential and differentiates
//     it numerically.
//
// The pipelines share nothing but charge placement, and each places its
// charges with its own variant.
package pipeline

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/efield/internal/charges"
	"github.com/san-kum/efield/internal/config"
	"github.com/san-kum/efield/internal/electro"
	"github.com/san-kum/efield/internal/grid"
	"github.com/san-kum/efield/internal/numdiff"
)

const (
	NameField     = "field"
	NamePotential = "potential"
)

// View is the square window shown in the figure.
type View struct {
	Min, Max float64
}

func (v View) Contains(x, y float64) bool {
	return x >= v.Min && x <= v.Max && y >= v.Min && y <= v.Max
}

type Result struct {
	Name    string
	Title   string
	Grid    *grid.Grid
	Charges []charges.Charge
	Ex, Ey  *mat.Dense
	// Color is 2·log|E|, used to color streamlines.
	Color *mat.Dense
	// Potential is set by the potential pipeline only.
	Potential *mat.Dense
	View      View
}

// NonFinite counts grid points where the field is undefined.
func (r *Result) NonFinite() int {
	return electro.NonFinite(r.Ex) + electro.NonFinite(r.Ey)
}

func setup(cfg *config.Config, p config.PipelineConfig) (*grid.Grid, []charges.Charge, error) {
	placement, err := charges.ParsePlacement(p.Placement)
	if err != nil {
		return nil, nil, err
	}
	g, err := grid.New(cfg.Grid.NX, cfg.Grid.NY, cfg.Grid.Min, cfg.Grid.Max)
	if err != nil {
		return nil, nil, err
	}
	return g, charges.Place(cfg.NQ, placement), nil
}

// FieldDirect sums the Coulomb field of each charge over the grid.
func FieldDirect(cfg *config.Config, logger *log.Logger) (*Result, error) {
	g, cs, err := setup(cfg, cfg.Field)
	if err != nil {
		return nil, fmt.Errorf("field pipeline: %w", err)
	}

	X, Y := g.Mesh()
	ex, ey := electro.Field(cs, X, Y)

	res := &Result{
		Name:    NameField,
		Title:   cfg.Field.Title,
		Grid:    g,
		Charges: cs,
		Ex:      ex,
		Ey:      ey,
		Color:   numdiff.LogColor(ex, ey),
		View:    View{Min: cfg.Field.ViewMin, Max: cfg.Field.ViewMax},
	}
	report(logger, res)
	return res, nil
}

// PotentialGradient sums the potential of each charge and takes the
// negated index-space gradient as the field.
func PotentialGradient(cfg *config.Config, logger *log.Logger) (*Result, error) {
	g, cs, err := setup(cfg, cfg.Potential)
	if err != nil {
		return nil, fmt.Errorf("potential pipeline: %w", err)
	}

	X, Y := g.Mesh()
	u := electro.Potential(cs, X, Y)
	ex, ey := numdiff.NegGradient(u)

	res := &Result{
		Name:      NamePotential,
		Title:     cfg.Potential.Title,
		Grid:      g,
		Charges:   cs,
		Ex:        ex,
		Ey:        ey,
		Color:     numdiff.LogColor(ex, ey),
		Potential: u,
		View:      View{Min: cfg.Potential.ViewMin, Max: cfg.Potential.ViewMax},
	}
	report(logger, res)
	return res, nil
}

func report(logger *log.Logger, res *Result) {
	if logger == nil {
		return
	}
	rows, cols := res.Grid.Shape()
	logger.Info("pipeline finished",
		"pipeline", res.Name,
		"charges", len(res.Charges),
		"net", charges.Net(res.Charges),
		"grid", fmt.Sprintf("%dx%d", rows, cols),
		"nonfinite", res.NonFinite(),
	)
	for i, c := range res.Charges {
		logger.Debug("charge", "pipeline", res.Name, "index", i, "q", c.Q, "x", c.X, "y", c.Y)
	}
}
