package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/quadview/quadview/quadrature"
)

// Sentinel errors for catalog assembly and lookup.
var (
	// ErrUnknownFunction indicates a lookup for an ID the catalog does not hold.
	ErrUnknownFunction = errors.New("catalog: unknown function ID")
	// ErrDuplicateID indicates two entries share an ID.
	ErrDuplicateID = errors.New("catalog: duplicate function ID")
	// ErrBadEntry indicates an entry with a missing ID, a nil integrand or
	// default bounds that do not satisfy a < b.
	ErrBadEntry = errors.New("catalog: invalid entry")
)

// Entry describes one named integrand plus its display metadata. Func is
// the only part the numeric core ever touches.
type Entry struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	LaTeX       string            `json:"latex"`
	Category    string            `json:"category"`
	DefaultA    float64           `json:"default_a"`
	DefaultB    float64           `json:"default_b"`
	BestMethod  quadrature.Method `json:"best_method"`
	Description string            `json:"description"`
	Func        quadrature.Func   `json:"-"`
}

// Catalog is an immutable-by-convention set of entries with stable
// registration order. Build one with New; it is never mutated afterwards,
// so concurrent lookups need no locking.
type Catalog struct {
	entries map[string]Entry
	order   []string
}

// New assembles a catalog from entries, rejecting duplicates and malformed
// entries. Order of the arguments becomes the List order.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make(map[string]Entry, len(entries)),
		order:   make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		if e.ID == "" || e.Func == nil || !(e.DefaultA < e.DefaultB) {
			return nil, fmt.Errorf("%w: %q", ErrBadEntry, e.ID)
		}
		if _, dup := c.entries[e.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, e.ID)
		}
		c.entries[e.ID] = e
		c.order = append(c.order, e.ID)
	}

	return c, nil
}

// Lookup returns the entry registered under id, or ErrUnknownFunction.
func (c *Catalog) Lookup(id string) (Entry, error) {
	e, ok := c.entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownFunction, id)
	}

	return e, nil
}

// List returns all entries in registration order.
func (c *Catalog) List() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id])
	}

	return out
}

// Builtin returns the standard twelve test functions, grouped by the
// behavior they exhibit under the three rules: smooth integrands where
// Simpson excels, (piecewise-)linear ones where trapezoidal is exact,
// symmetric ones favoring midpoint, mild curvature, turning points, and
// two deliberately nasty discontinuous cases.
func Builtin() []Entry {
	return []Entry{
		{
			ID: "smooth_sin", Name: "sin(x)", LaTeX: `\sin(x)`,
			Category: "Smooth", DefaultA: 0, DefaultB: math.Pi,
			BestMethod:  quadrature.Simpson,
			Description: "Classic smooth periodic function",
			Func:        math.Sin,
		},
		{
			ID: "smooth_exp", Name: "e^x", LaTeX: `e^x`,
			Category: "Smooth", DefaultA: 0, DefaultB: 1,
			BestMethod:  quadrature.Simpson,
			Description: "Exponential growth - infinitely differentiable",
			Func:        math.Exp,
		},
		{
			ID: "trap_linear", Name: "2x + 1", LaTeX: `2x + 1`,
			Category: "Trapezoidal Best", DefaultA: 0, DefaultB: 5,
			BestMethod:  quadrature.Trapezoidal,
			Description: "Linear function - trapezoidal is exact for degree 1",
			Func:        func(x float64) float64 { return 2*x + 1 },
		},
		{
			ID: "trap_piecewise", Name: "|x - 1|", LaTeX: `|x - 1|`,
			Category: "Trapezoidal Best", DefaultA: 0, DefaultB: 2,
			BestMethod:  quadrature.Trapezoidal,
			Description: "Piecewise linear V-shape - trapezoidal handles corners well",
			Func:        func(x float64) float64 { return math.Abs(x - 1) },
		},
		{
			ID: "mid_quadratic", Name: "x² - 2x", LaTeX: `x^2 - 2x`,
			Category: "Midpoint Best", DefaultA: 0, DefaultB: 3,
			BestMethod:  quadrature.Midpoint,
			Description: "Quadratic - midpoint has better error cancellation",
			Func:        func(x float64) float64 { return x*x - 2*x },
		},
		{
			ID: "mid_symmetric", Name: "x⁴ - x²", LaTeX: `x^4 - x^2`,
			Category: "Midpoint Best", DefaultA: -1, DefaultB: 1,
			BestMethod:  quadrature.Midpoint,
			Description: "Symmetric function - errors cancel at midpoints",
			Func:        func(x float64) float64 { return x*x*x*x - x*x },
		},
		{
			ID: "mild_rational", Name: "1/(1+x²)", LaTeX: `\frac{1}{1+x^2}`,
			Category: "Mild Curvature", DefaultA: 0, DefaultB: 1,
			BestMethod:  quadrature.Simpson,
			Description: "Rational function with gentle curve",
			Func:        func(x float64) float64 { return 1 / (1 + x*x) },
		},
		{
			ID: "mild_sqrt", Name: "√(1+x)", LaTeX: `\sqrt{1+x}`,
			Category: "Mild Curvature", DefaultA: 0, DefaultB: 3,
			BestMethod:  quadrature.Simpson,
			Description: "Square root - smooth but with decreasing derivative",
			Func:        func(x float64) float64 { return math.Sqrt(1 + x) },
		},
		{
			ID: "turning_cubic", Name: "x³ - 3x", LaTeX: `x^3 - 3x`,
			Category: "Turning Points", DefaultA: -2, DefaultB: 2,
			BestMethod:  quadrature.Simpson,
			Description: "Cubic with local max and min",
			Func:        func(x float64) float64 { return x*x*x - 3*x },
		},
		{
			ID: "turning_cos5x", Name: "cos(5x)", LaTeX: `\cos(5x)`,
			Category: "Turning Points", DefaultA: 0, DefaultB: math.Pi,
			BestMethod:  quadrature.Simpson,
			Description: "High frequency oscillation - needs more intervals",
			Func:        func(x float64) float64 { return math.Cos(5 * x) },
		},
		{
			ID: "disc_step", Name: "step(x-0.5)", LaTeX: `\text{step}(x - 0.5)`,
			Category: "Challenging", DefaultA: 0, DefaultB: 1,
			BestMethod:  quadrature.Midpoint,
			Description: "Step function - all rules struggle with discontinuities",
			Func: func(x float64) float64 {
				if x < 0.5 {
					return 0
				}

				return 1
			},
		},
		{
			ID: "disc_sawtooth", Name: "x mod 0.5", LaTeX: `x \bmod 0.5`,
			Category: "Challenging", DefaultA: 0, DefaultB: 2,
			BestMethod:  quadrature.Trapezoidal,
			Description: "Sawtooth wave - periodic with sharp corners",
			Func:        func(x float64) float64 { return math.Mod(x, 0.5) },
		},
	}
}
