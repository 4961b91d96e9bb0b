package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/quadview/quadview/catalog"
	"github.com/quadview/quadview/convergence"
	"github.com/quadview/quadview/exprfn"
	"github.com/quadview/quadview/plotdata"
	"github.com/quadview/quadview/quadrature"
	"github.com/quadview/quadview/refquad"
)

// defaultNValues is the standard doubling sweep applied when an analyze
// request omits n_values.
var defaultNValues = []int{4, 8, 16, 32, 64, 128, 256, 512, 1024}

// errNoFunction rejects requests naming neither a catalog ID nor a custom
// expression.
var errNoFunction = errors.New("httpapi: either function_id or custom_expression must be provided")

// Server wires the catalog, the expression compiler and the reference
// oracle behind the JSON endpoints. Stateless between requests; safe for
// concurrent use.
type Server struct {
	log         *slog.Logger
	catalog     *catalog.Catalog
	compiler    *exprfn.Compiler
	oracle      refquad.Integrator
	curvePoints int
	mux         *http.ServeMux
}

// NewServer assembles the boundary. A nil logger falls back to
// slog.Default(); CurvePoints ≤ 0 falls back to plotdata's default.
func NewServer(cfg Config, cat *catalog.Catalog, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		log:         logger,
		catalog:     cat,
		compiler:    exprfn.NewCompiler(cfg.ExprCacheTTL),
		oracle:      refquad.NewGaussLegendre(),
		curvePoints: cfg.CurvePoints,
		mux:         http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /api/functions", s.handleFunctions)
	s.mux.HandleFunc("POST /api/calculate", s.handleCalculate)
	s.mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	return s
}

// Handler returns the routed handler wrapped with request logging.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFunctions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, functionsResponse{Functions: s.catalog.List()})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("httpapi: malformed request body: %w", err))

		return
	}

	method, err := quadrature.ParseMethod(req.Method)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)

		return
	}
	if err := validateInterval(req.A, req.B); err != nil {
		s.writeError(w, http.StatusBadRequest, err)

		return
	}
	if req.N < 1 {
		s.writeError(w, http.StatusBadRequest, quadrature.ErrBadSubdivisions)

		return
	}

	f, meta, err := s.resolveFunc(req.FunctionID, req.CustomExpression)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)

		return
	}

	approx, err := quadrature.Integrate(method, f, req.A, req.B, req.N)
	if err != nil {
		s.writeError(w, statusFor(err), err)

		return
	}
	exact, _, err := s.oracle.Integrate(f, req.A, req.B)
	if err != nil {
		s.writeError(w, statusFor(err), err)

		return
	}
	payload, err := plotdata.Build(f, req.A, req.B, req.N, method, s.curvePoints)
	if err != nil {
		s.writeError(w, statusFor(err), err)

		return
	}

	pair := convergence.Errors(approx, exact)
	writeJSON(w, http.StatusOK, calculateResponse{
		FunctionID:    req.FunctionID,
		FunctionName:  meta.name,
		FunctionLaTeX: meta.latex,
		Method:        method,
		A:             req.A,
		B:             req.B,
		N:             req.N,
		EffectiveN:    method.Effective(req.N),
		H:             method.StepSize(req.A, req.B, req.N),
		Approximation: approx,
		ExactValue:    exact,
		AbsoluteError: pair.Absolute,
		RelativeError: pair.Relative,
		Curve:         payload.Curve,
		Shapes:        payload.Shapes,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("httpapi: malformed request body: %w", err))

		return
	}

	methods := quadrature.Methods()
	if len(req.Methods) > 0 {
		methods = methods[:0]
		for _, name := range req.Methods {
			m, err := quadrature.ParseMethod(name)
			if err != nil {
				s.writeError(w, http.StatusBadRequest, err)

				return
			}
			methods = append(methods, m)
		}
	}

	if err := validateInterval(req.A, req.B); err != nil {
		s.writeError(w, http.StatusBadRequest, err)

		return
	}

	nValues := req.NValues
	if len(nValues) == 0 {
		nValues = defaultNValues
	}
	for _, n := range nValues {
		if n < 1 {
			s.writeError(w, http.StatusBadRequest, quadrature.ErrBadSubdivisions)

			return
		}
	}

	f, meta, err := s.resolveFunc(req.FunctionID, req.CustomExpression)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)

		return
	}

	report, err := convergence.Analyze(f, req.A, req.B, methods, nValues, s.oracle)
	if err != nil {
		s.writeError(w, statusFor(err), err)

		return
	}

	orders := make(map[quadrature.Method]float64, len(methods))
	for _, m := range methods {
		orders[m] = convergence.TheoreticalOrder(m)
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		FunctionID:         req.FunctionID,
		FunctionName:       meta.name,
		FunctionLaTeX:      meta.latex,
		A:                  req.A,
		B:                  req.B,
		ExactValue:         report.Reference,
		ExactErrorEstimate: report.ReferenceEstimate,
		Results:            report.Results,
		Winner:             report.Winner,
		WinCounts:          report.Wins,
		Improvements:       report.Improvements,
		TheoreticalOrders:  orders,
	})
}

// funcMeta carries display metadata alongside a resolved integrand.
type funcMeta struct {
	name  string
	latex string
}

// resolveFunc turns the request's function selection into an integrand:
// a catalog ID wins over a custom expression; naming neither is an error.
func (s *Server) resolveFunc(functionID, customExpression string) (quadrature.Func, funcMeta, error) {
	switch {
	case functionID != "":
		entry, err := s.catalog.Lookup(functionID)
		if err != nil {
			return nil, funcMeta{}, err
		}

		return entry.Func, funcMeta{name: entry.Name, latex: entry.LaTeX}, nil
	case customExpression != "":
		f, err := s.compiler.Compile(customExpression)
		if err != nil {
			return nil, funcMeta{}, err
		}

		return f, funcMeta{name: customExpression, latex: customExpression}, nil
	default:
		return nil, funcMeta{}, errNoFunction
	}
}

// validateInterval enforces the boundary precondition a < b with finite
// bounds before anything reaches the core.
func validateInterval(a, b float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) || a >= b {
		return quadrature.ErrInvalidInterval
	}

	return nil
}

// statusFor maps computation failures onto HTTP statuses: evaluation and
// reference failures are the client's integrand misbehaving (422); input
// sentinels are 400 backstops; the rest is a server fault.
func statusFor(err error) int {
	switch {
	case errors.Is(err, quadrature.ErrNonFiniteSample), errors.Is(err, refquad.ErrNotFinite):
		return http.StatusUnprocessableEntity
	case errors.Is(err, quadrature.ErrInvalidInterval),
		errors.Is(err, quadrature.ErrBadSubdivisions),
		errors.Is(err, quadrature.ErrUnknownMethod),
		errors.Is(err, convergence.ErrNoMethods),
		errors.Is(err, convergence.ErrNoSubdivisions):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", "status", status, "err", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// statusRecorder captures the response code for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs one line per request with method, path, status and
// duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
