// Package web exposes the solver engine over HTTP: the same
// scramble/stage/solve/visibility operations the CLI offers, routed
// through gorilla/mux, with google/uuid stamping a request id onto every
// response for client-side correlation.
package web

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/behrlich/fmc-cube/internal/cfen"
	"github.com/behrlich/fmc-cube/internal/cubie"
	"github.com/behrlich/fmc-cube/internal/pipeline"
	"github.com/behrlich/fmc-cube/internal/scramble"
	"github.com/behrlich/fmc-cube/internal/search"
	"github.com/behrlich/fmc-cube/internal/stage"
)

// Server wraps the configured mux.Router; NewServer builds the route
// table once, Start just hands it to http.ListenAndServe.
type Server struct {
	router *mux.Router
}

// NewServer builds a Server with every route wired.
func NewServer() *Server {
	s := &Server{router: mux.NewRouter()}
	s.router.HandleFunc("/scramble", s.handleScramble).Methods(http.MethodGet)
	s.router.HandleFunc("/stage/{kind}/{variant}", s.handleStage).Methods(http.MethodPost)
	s.router.HandleFunc("/solve", s.handleSolve).Methods(http.MethodPost)
	s.router.HandleFunc("/visibility", s.handleVisibility).Methods(http.MethodPost)
	return s
}

// Start begins serving on addr.
func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

func requestID() string {
	return uuid.NewString()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("web: failed encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, requestID string, err error) {
	writeJSON(w, status, map[string]string{
		"requestId": requestID,
		"error":     err.Error(),
	})
}

type scrambleResponse struct {
	RequestID string `json:"requestId"`
	Algorithm string `json:"algorithm"`
	CFEN      string `json:"cfen"`
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	id := requestID()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	alg, err := scramble.Generate(rng)
	if err != nil {
		writeError(w, http.StatusInternalServerError, id, err)
		return
	}
	c := cubie.Solved()
	c.ApplyAlgorithm(alg)
	writeJSON(w, http.StatusOK, scrambleResponse{
		RequestID: id,
		Algorithm: alg.String(),
		CFEN:      cfen.String(c),
	})
}

type cubeRequest struct {
	CFEN string `json:"cfen"`
}

type stageResponse struct {
	RequestID  string `json:"requestId"`
	Kind       string `json:"kind"`
	Variant    string `json:"variant"`
	IsSolved   bool   `json:"isSolved"`
	IsEligible bool   `json:"isEligible"`
	CaseName   string `json:"caseName"`
}

func (s *Server) handleStage(w http.ResponseWriter, r *http.Request) {
	id := requestID()
	vars := mux.Vars(r)
	kind, ok := stage.ParseKind(vars["kind"])
	if !ok {
		writeError(w, http.StatusBadRequest, id, errUnknownKind(vars["kind"]))
		return
	}
	axis, ok := cubie.ParseAxis(vars["variant"])
	if !ok {
		writeError(w, http.StatusBadRequest, id, errUnknownVariant(vars["variant"]))
		return
	}
	var req cubeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, id, err)
		return
	}
	c, err := cfen.Parse(req.CFEN)
	if err != nil {
		writeError(w, http.StatusBadRequest, id, err)
		return
	}

	cls := stage.For(kind, axis)
	writeJSON(w, http.StatusOK, stageResponse{
		RequestID:  id,
		Kind:       kind.String(),
		Variant:    axis.String(),
		IsSolved:   cls.IsSolved(c),
		IsEligible: cls.IsEligible(c),
		CaseName:   cls.CaseName(c),
	})
}

type solveRequest struct {
	CFEN    string `json:"cfen"`
	Kind    string `json:"kind"`
	Variant string `json:"variant"`
	Count   int    `json:"count"`
	Niss    string `json:"niss"`
}

type solveResponse struct {
	RequestID  string   `json:"requestId"`
	Algorithms []string `json:"algorithms"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	id := requestID()
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, id, err)
		return
	}
	kind, ok := stage.ParseKind(req.Kind)
	if !ok {
		writeError(w, http.StatusBadRequest, id, errUnknownKind(req.Kind))
		return
	}
	axis, ok := cubie.ParseAxis(req.Variant)
	if !ok {
		writeError(w, http.StatusBadRequest, id, errUnknownVariant(req.Variant))
		return
	}
	c, err := cfen.Parse(req.CFEN)
	if err != nil {
		writeError(w, http.StatusBadRequest, id, err)
		return
	}
	if kind == stage.Insertions {
		writeError(w, http.StatusBadRequest, id, search.ErrNoSolver)
		return
	}

	count := req.Count
	if count <= 0 {
		count = 1
	}
	prepared, prereq, err := pipeline.Drive(c, kind, axis)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, id, err)
		return
	}
	cls := stage.For(kind, axis)
	algs, err := search.Find(prepared, cls, count, search.Options{
		Niss:             parseNiss(req.Niss),
		RequireCanonical: kind == stage.EO || kind == stage.DR || kind == stage.HTR,
		DedupCases:       true,
		Bound:            search.BoundFor(kind, axis),
	})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, id, err)
		return
	}
	var rendered []string
	for _, a := range algs {
		rendered = append(rendered, prereq.Merge(a).String())
	}
	writeJSON(w, http.StatusOK, solveResponse{RequestID: id, Algorithms: rendered})
}

func parseNiss(s string) search.NissPolicy {
	switch s {
	case "before":
		return search.NissBefore
	case "always":
		return search.NissAlways
	default:
		return search.NissNever
	}
}

type visibilityRequest struct {
	CFEN    string `json:"cfen"`
	Kind    string `json:"kind"`
	Variant string `json:"variant"`
}

type visibilityResponse struct {
	RequestID string      `json:"requestId"`
	Edges     [12][2]uint8 `json:"edges"`
	Corners   [8][3]uint8  `json:"corners"`
}

func (s *Server) handleVisibility(w http.ResponseWriter, r *http.Request) {
	id := requestID()
	var req visibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, id, err)
		return
	}
	kind, ok := stage.ParseKind(req.Kind)
	if !ok {
		writeError(w, http.StatusBadRequest, id, errUnknownKind(req.Kind))
		return
	}
	axis, ok := cubie.ParseAxis(req.Variant)
	if !ok {
		writeError(w, http.StatusBadRequest, id, errUnknownVariant(req.Variant))
		return
	}
	c, err := cfen.Parse(req.CFEN)
	if err != nil {
		writeError(w, http.StatusBadRequest, id, err)
		return
	}

	cls := stage.For(kind, axis)
	var resp visibilityResponse
	resp.RequestID = id
	for i := range resp.Edges {
		for f := 0; f < 2; f++ {
			resp.Edges[i][f] = uint8(cls.EdgeVisibility(c, i, f))
		}
	}
	for i := range resp.Corners {
		for f := 0; f < 3; f++ {
			resp.Corners[i][f] = uint8(cls.CornerVisibility(c, i, f))
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
