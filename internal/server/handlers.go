package server

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/factorial"
	"github.com/agbru/numcalc/internal/fibonacci"
	"github.com/agbru/numcalc/internal/sysmon"
)

// fibonacciResponse is the JSON envelope for a single-value computation.
type fibonacciResponse struct {
	N        int    `json:"n"`
	Method   string `json:"method"`
	Value    string `json:"value"`
	Digits   int    `json:"digits"`
	Duration string `json:"duration"`
}

// sequenceResponse is the JSON envelope for a sequence computation.
type sequenceResponse struct {
	Count    int      `json:"count"`
	Method   string   `json:"method"`
	Values   []string `json:"values"`
	Duration string   `json:"duration"`
}

// factorialResponse is the JSON envelope for a factorial computation.
type factorialResponse struct {
	N        int    `json:"n"`
	Method   string `json:"method"`
	Value    string `json:"value"`
	Digits   int    `json:"digits"`
	Duration string `json:"duration"`
}

// errorResponse is the JSON envelope for all error outcomes.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// writeJSON serializes a payload with the proper content type.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", err)
	}
}

// writeError maps an error to its HTTP status and writes the error envelope:
// domain rejections are 400, depth exhaustion is 422, timeouts are 504, and
// anything else is 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsDomainError(err):
		status = http.StatusBadRequest
	case apperrors.IsExhaustion(err):
		status = http.StatusUnprocessableEntity
	case apperrors.IsContextError(err):
		status = http.StatusGatewayTimeout
	}
	s.writeJSON(w, status, errorResponse{
		Error:     err.Error(),
		RequestID: requestIDFrom(r.Context()),
	})
}

// parseIndexParam extracts the {n} path parameter as an integer.
func parseIndexParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "n")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewDomainError("'%s' is not an integer", raw)
	}
	return n, nil
}

// methodParam resolves the optional ?method= query parameter, falling back to
// the server's configured default.
func (s *Server) methodParam(r *http.Request) (fibonacci.Method, error) {
	name := r.URL.Query().Get("method")
	if name == "" {
		name = s.cfg.Method
	}
	if name == "" {
		return fibonacci.DefaultMethod, nil
	}
	return fibonacci.ParseMethod(name)
}

// checkBounds rejects indices the API is not willing to serve: anything past
// MaxIndex, and naive recursion past its practical limit (a request that
// cannot complete within any sane HTTP timeout).
func checkBounds(n int, method fibonacci.Method) error {
	if n > MaxIndex {
		return apperrors.NewDomainError("index %d exceeds the maximum of %d", n, MaxIndex)
	}
	if method == fibonacci.MethodRecursive && n > fibonacci.RecursiveSequenceLimit {
		return apperrors.NewDomainError(
			"Recursive method is too slow for n > %d. Use 'iterative', 'memoized', or 'generator' instead",
			fibonacci.RecursiveSequenceLimit)
	}
	return nil
}

// handleFibonacci serves GET /api/v1/fibonacci/{n}?method=.
func (s *Server) handleFibonacci(w http.ResponseWriter, r *http.Request) {
	n, err := parseIndexParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	method, err := s.methodParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := checkBounds(n, method); err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	start := time.Now()
	value, err := s.gen.Compute(ctx, method, n)
	duration := time.Since(start)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, fibonacciResponse{
		N:        n,
		Method:   method.String(),
		Value:    value.String(),
		Digits:   len(value.String()),
		Duration: duration.String(),
	})
}

// handleSequence serves GET /api/v1/fibonacci/sequence?count=&method=.
func (s *Server) handleSequence(w http.ResponseWriter, r *http.Request) {
	rawCount := r.URL.Query().Get("count")
	count, err := strconv.Atoi(rawCount)
	if err != nil {
		s.writeError(w, r, apperrors.NewDomainError("'%s' is not an integer", rawCount))
		return
	}
	method, err := s.methodParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if count > MaxIndex {
		s.writeError(w, r, apperrors.NewDomainError("count %d exceeds the maximum of %d", count, MaxIndex))
		return
	}

	start := time.Now()
	seq, err := s.gen.Sequence(count, method)
	duration := time.Since(start)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	values := make([]string, len(seq))
	for i, v := range seq {
		values[i] = v.String()
	}
	s.writeJSON(w, http.StatusOK, sequenceResponse{
		Count:    count,
		Method:   method.String(),
		Values:   values,
		Duration: duration.String(),
	})
}

// handleFactorial serves GET /api/v1/factorial/{n}?method=.
func (s *Server) handleFactorial(w http.ResponseWriter, r *http.Request) {
	n, err := parseIndexParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if n > MaxIndex {
		s.writeError(w, r, apperrors.NewDomainError("index %d exceeds the maximum of %d", n, MaxIndex))
		return
	}

	method := r.URL.Query().Get("method")
	if method == "" {
		method = "iterative"
	}

	var value *big.Int
	start := time.Now()
	switch method {
	case "iterative":
		value, err = factorial.Iterative(n)
	case "recursive":
		value, err = factorial.Recursive(n)
	default:
		s.writeError(w, r, apperrors.NewDomainError("Invalid method '%s'. Use 'iterative' or 'recursive'", method))
		return
	}
	duration := time.Since(start)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, factorialResponse{
		N:        n,
		Method:   method,
		Value:    value.String(),
		Digits:   len(value.String()),
		Duration: duration.String(),
	})
}

// handleMethods serves GET /api/v1/methods.
func (s *Server) handleMethods(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"methods": fibonacci.MethodNames(),
		"default": fibonacci.DefaultMethod.String(),
	})
}

// handleHealth serves GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	proc := sysmon.SampleProcess()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":     "healthy",
		"timestamp":  time.Now().Unix(),
		"goroutines": proc.Goroutines,
		"heap_bytes": proc.HeapAllocBytes,
	})
}

// handleVersion serves GET /version.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.version)
}
