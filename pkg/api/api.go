package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/permtree/pkg/buildinfo"
	"github.com/matzehuels/permtree/pkg/errors"
	"github.com/matzehuels/permtree/pkg/observability"
	"github.com/matzehuels/permtree/pkg/permtree"
)

const (
	// MaxEnumerateSize is the largest alphabet whose full enumeration is
	// returned without a limit (8! = 40320 entries).
	MaxEnumerateSize = 8

	// MaxLimit caps the limit query parameter.
	MaxLimit = 10000

	// requestTimeout bounds the time spent in a single handler.
	requestTimeout = 30 * time.Second
)

// Lookup methods accepted by the method query parameter.
const (
	MethodDirect      = "direct"
	MethodEnumeration = "enumeration"
)

// Server holds the handlers' shared state.
type Server struct {
	logger *log.Logger
}

// NewRouter returns the API's HTTP handler. A nil logger uses log.Default().
func NewRouter(logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(s.observe)

	r.Get("/healthz", s.health)
	r.Get("/version", s.version)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/factorial/{n}", s.factorial)
		r.Route("/alphabets/{alphabet}", func(r chi.Router) {
			r.Get("/permutations", s.enumerate)
			r.Get("/permutations/{rank}", s.lookup)
			r.Get("/ranks/{permutation}", s.rank)
		})
	})
	return r
}

// observe reports each request to the HTTP hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Current())
}

// FactorialResponse is returned by GET /v1/factorial/{n}.
type FactorialResponse struct {
	N        int   `json:"n"`
	Value    int64 `json:"value"`
	Overflow bool  `json:"overflow"`
}

func (s *Server) factorial(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "n must be an integer"))
		return
	}
	v := permtree.SafeFactorial(n)
	writeJSON(w, http.StatusOK, FactorialResponse{N: n, Value: v, Overflow: v == -1})
}

// EnumerateResponse is returned by GET /v1/alphabets/{alphabet}/permutations.
type EnumerateResponse struct {
	Alphabet     string   `json:"alphabet"`
	Total        int64    `json:"total"`
	Permutations []string `json:"permutations"`
}

func (s *Server) enumerate(w http.ResponseWriter, r *http.Request) {
	alphabet, err := alphabetParam(r, permtree.MaxTreeSize)
	if err != nil {
		s.writeError(w, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 || limit > MaxLimit {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "limit must be in [1, %d]", MaxLimit))
			return
		}
	}
	if limit == 0 && len(alphabet) > MaxEnumerateSize {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput,
			"alphabets over %d symbols need a limit", MaxEnumerateSize))
		return
	}

	tree := permtree.New(alphabet)
	resp := EnumerateResponse{
		Alphabet:     string(tree.Alphabet()),
		Total:        tree.Count(),
		Permutations: []string{},
	}
	for rank, p := range tree.All() {
		if limit > 0 && rank > int64(limit) {
			break
		}
		resp.Permutations = append(resp.Permutations, p.String())
	}
	writeJSON(w, http.StatusOK, resp)
}

// LookupResponse is returned by GET /v1/alphabets/{alphabet}/permutations/{rank}.
type LookupResponse struct {
	Alphabet    string `json:"alphabet"`
	Rank        int64  `json:"rank"`
	Method      string `json:"method"`
	Permutation string `json:"permutation"`
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Query().Get("method")
	if method == "" {
		method = MethodDirect
	}
	if err := errors.ValidateFormat(method, MethodDirect, MethodEnumeration); err != nil {
		s.writeError(w, err)
		return
	}

	maxSize := permtree.MaxFactorialInput
	if method == MethodEnumeration {
		maxSize = MaxEnumerateSize
	}
	alphabet, err := alphabetParam(r, -1)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(alphabet) > maxSize {
		code := errors.ErrCodeInvalidAlphabet
		if method == MethodDirect {
			code = errors.ErrCodeOverflow
		}
		s.writeError(w, errors.New(code, "%s lookup supports at most %d symbols, got %d", method, maxSize, len(alphabet)))
		return
	}

	rank, err := errors.ParseRank(chi.URLParam(r, "rank"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var p permtree.Permutation
	var sorted []permtree.Symbol
	if method == MethodEnumeration {
		tree := permtree.New(alphabet)
		sorted = tree.Alphabet()
		p = tree.LookupByEnumeration(rank)
	} else {
		sorted = sortedCopy(alphabet)
		p = permtree.Unrank(sorted, rank)
	}
	if p == nil {
		n := len(alphabet)
		s.writeError(w, errors.RankOutOfRange(rank, n, permtree.SafeFactorial(n)))
		return
	}

	writeJSON(w, http.StatusOK, LookupResponse{
		Alphabet:    string(sorted),
		Rank:        rank,
		Method:      method,
		Permutation: p.String(),
	})
}

// RankResponse is returned by GET /v1/alphabets/{alphabet}/ranks/{permutation}.
type RankResponse struct {
	Alphabet    string `json:"alphabet"`
	Permutation string `json:"permutation"`
	Rank        int64  `json:"rank"`
}

func (s *Server) rank(w http.ResponseWriter, r *http.Request) {
	alphabet, err := alphabetParam(r, permtree.MaxFactorialInput)
	if err != nil {
		s.writeError(w, err)
		return
	}
	raw, err := url.PathUnescape(chi.URLParam(r, "permutation"))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid permutation"))
		return
	}

	sorted := sortedCopy(alphabet)
	rank := permtree.Rank(sorted, permtree.Permutation(raw))
	if rank == 0 {
		s.writeError(w, errors.New(errors.ErrCodeNotFound,
			"%q is not a permutation of %q", raw, string(sorted)))
		return
	}
	writeJSON(w, http.StatusOK, RankResponse{Alphabet: string(sorted), Permutation: raw, Rank: rank})
}

// errorResponse is the JSON body of every error.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := errors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
