package exprfn

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	gocache "github.com/patrickmn/go-cache"
	"github.com/spf13/cast"

	"github.com/quadview/quadview/quadrature"
)

// Sentinel errors for expression compilation.
var (
	// ErrEmptyExpression indicates a blank source string.
	ErrEmptyExpression = errors.New("exprfn: expression must be non-empty")
	// ErrCompile indicates the source failed to compile against the
	// whitelisted environment (syntax error or unknown identifier).
	ErrCompile = errors.New("exprfn: expression does not compile")
)

// DefaultCacheTTL bounds how long a compiled program stays cached.
const DefaultCacheTTL = 10 * time.Minute

// Compiler compiles formula strings into integrands, caching compiled
// programs by source. Safe for concurrent use.
type Compiler struct {
	programs *gocache.Cache
}

// NewCompiler returns a Compiler whose program cache expires entries after
// ttl (ttl ≤ 0 selects DefaultCacheTTL).
func NewCompiler(ttl time.Duration) *Compiler {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &Compiler{programs: gocache.New(ttl, ttl)}
}

// baseEnv is the whole world an expression can see: x, eight math
// functions and two constants. Rebuilt per evaluation so programs cannot
// observe each other.
func baseEnv() map[string]any {
	return map[string]any{
		"x":    0.0,
		"sin":  math.Sin,
		"cos":  math.Cos,
		"tan":  math.Tan,
		"exp":  math.Exp,
		"log":  math.Log,
		"sqrt": math.Sqrt,
		"abs":  math.Abs,
		"pow":  math.Pow,
		"pi":   math.Pi,
		"e":    math.E,
	}
}

// Compile parses src once (or pulls the cached program) and returns a
// quadrature.Func evaluating it at a given x.
//
// Compile-time failures return ErrEmptyExpression or ErrCompile wrapping
// the parser's message. Runtime faults are reported as NaN by the returned
// Func — the quadrature layer's finiteness policy turns those into
// evaluation failures with the offending sample point.
func (c *Compiler) Compile(src string) (quadrature.Func, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEmptyExpression
	}

	program, err := c.program(src)
	if err != nil {
		return nil, err
	}

	return func(x float64) float64 {
		env := baseEnv()
		env["x"] = x

		out, err := expr.Run(program, env)
		if err != nil {
			return math.NaN()
		}
		y, err := cast.ToFloat64E(out)
		if err != nil {
			return math.NaN()
		}

		return y
	}, nil
}

// program returns the cached compiled form of src, compiling on miss.
func (c *Compiler) program(src string) (*vm.Program, error) {
	if cached, ok := c.programs.Get(src); ok {
		return cached.(*vm.Program), nil
	}

	program, err := expr.Compile(src, expr.Env(baseEnv()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}
	c.programs.Set(src, program, gocache.DefaultExpiration)

	return program, nil
}
