package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"relief-allocation-service/internal/adapters/memory"
	"relief-allocation-service/internal/api/dto"
	"relief-allocation-service/internal/domain"
	"relief-allocation-service/internal/ports"
	"relief-allocation-service/internal/services"
	"sync"
)

const maxBodyBytes = 8 << 20

// AllocationHandler runs allocation plans and serves the latest one.
// The latest plan lives in memory for the lifetime of the process only.
type AllocationHandler struct {
	Source ports.InputSource
	Plan   services.PlanReliefRequest

	mu     sync.RWMutex
	latest *dto.PlanResponse
}

func NewAllocationHandler(source ports.InputSource, plan services.PlanReliefRequest) *AllocationHandler {
	return &AllocationHandler{Source: source, Plan: plan}
}

// Allocate computes a plan from the inline JSON body, or from the configured
// source when the body is empty, and stores it as the latest plan.
func (h *AllocationHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, "could not read request body")
		return
	}

	source := h.Source
	if len(bytes.TrimSpace(body)) > 0 {
		var req dto.AllocateRequest
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid json body")
			return
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
			return
		}

		source = memory.NewSource(req.Rows())
	}
	if source == nil {
		writeError(w, r, http.StatusBadRequest, "no input source configured; send inputs in the body")
		return
	}

	res, err := services.PlanRelief(r.Context(), h.Plan, source)
	if err != nil {
		log.Printf("plan relief failed: %v", err)
		if errors.Is(err, domain.ErrInputUnavailable) {
			writeError(w, r, http.StatusServiceUnavailable, "input unavailable")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := dto.NewPlanResponse(res, true)
	h.mu.Lock()
	h.latest = &resp
	h.mu.Unlock()

	writeJSON(w, r, http.StatusOK, resp)
}

// Latest serves the most recent plan without run details.
func (h *AllocationHandler) Latest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	h.mu.RLock()
	latest := h.latest
	h.mu.RUnlock()

	if latest == nil {
		writeError(w, r, http.StatusNotFound, "no allocation has been run yet")
		return
	}

	public := *latest
	public.RunID = ""
	public.Requests = nil
	public.Dropped = nil
	writeJSON(w, r, http.StatusOK, public)
}
