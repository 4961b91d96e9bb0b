package httpapi

import (
	"github.com/quadview/quadview/catalog"
	"github.com/quadview/quadview/convergence"
	"github.com/quadview/quadview/plotdata"
	"github.com/quadview/quadview/quadrature"
)

// calculateRequest selects an integrand (catalog ID or custom expression),
// a rule, the interval and the subdivision count.
type calculateRequest struct {
	FunctionID       string  `json:"function_id"`
	CustomExpression string  `json:"custom_expression"`
	Method           string  `json:"method"`
	A                float64 `json:"a"`
	B                float64 `json:"b"`
	N                int     `json:"n"`
}

// calculateResponse is one approximation with its reference comparison and
// visualization payload. H always reflects the effective subdivision count
// (Simpson's odd-n adjustment included).
type calculateResponse struct {
	FunctionID    string            `json:"function_id,omitempty"`
	FunctionName  string            `json:"function_name,omitempty"`
	FunctionLaTeX string            `json:"function_latex,omitempty"`
	Method        quadrature.Method `json:"method"`
	A             float64           `json:"a"`
	B             float64           `json:"b"`
	N             int               `json:"n"`
	EffectiveN    int               `json:"effective_n"`
	H             float64           `json:"h"`
	Approximation float64           `json:"approximation"`
	ExactValue    float64           `json:"exact_value"`
	AbsoluteError float64           `json:"absolute_error"`
	RelativeError float64           `json:"relative_error"`
	Curve         []plotdata.Point  `json:"curve"`
	Shapes        []plotdata.Shape  `json:"shapes"`
}

// analyzeRequest sweeps a set of methods over a list of subdivision
// counts. Empty methods defaults to all three; empty n_values defaults to
// the standard doubling sweep 4…1024.
type analyzeRequest struct {
	FunctionID       string   `json:"function_id"`
	CustomExpression string   `json:"custom_expression"`
	Methods          []string `json:"methods"`
	A                float64  `json:"a"`
	B                float64  `json:"b"`
	NValues          []int    `json:"n_values"`
}

// analyzeResponse is the full convergence report plus display metadata.
type analyzeResponse struct {
	FunctionID         string                                `json:"function_id,omitempty"`
	FunctionName       string                                `json:"function_name,omitempty"`
	FunctionLaTeX      string                                `json:"function_latex,omitempty"`
	A                  float64                               `json:"a"`
	B                  float64                               `json:"b"`
	ExactValue         float64                               `json:"exact_value"`
	ExactErrorEstimate float64                               `json:"exact_error_estimate"`
	Results            map[quadrature.Method][]convergence.Entry `json:"results"`
	Winner             quadrature.Method                     `json:"winner"`
	WinCounts          map[quadrature.Method]int             `json:"win_counts"`
	Improvements       map[quadrature.Method]float64         `json:"improvements"`
	TheoreticalOrders  map[quadrature.Method]float64         `json:"theoretical_orders"`
}

// functionsResponse lists the catalog for UI discovery.
type functionsResponse struct {
	Functions []catalog.Entry `json:"functions"`
}

// errorResponse is the uniform failure body.
type errorResponse struct {
	Error string `json:"error"`
}
