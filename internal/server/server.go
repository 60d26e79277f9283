// Package server exposes the estimator over HTTP: per-session stores
// mutated through the action contract, suggestion projections, and a
// one-shot estimate endpoint for whole deal descriptions.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/autofi/finance-estimator/internal/state"
	"github.com/autofi/finance-estimator/internal/suggest"
	"github.com/autofi/finance-estimator/pkg/adapters"
	"github.com/autofi/finance-estimator/pkg/constants"
	"github.com/autofi/finance-estimator/pkg/finance"
	"github.com/autofi/finance-estimator/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	sessions    *sessionRegistry
	defaults    state.Defaults
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the estimator API.
func NewHandler(logger *zap.Logger, defaults state.Defaults, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		sessions:    newSessionRegistry(logger, defaults),
		defaults:    defaults,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
	}

	mux := http.NewServeMux()

	// Session lifecycle
	mux.HandleFunc("/api/sessions", h.handleSessions)
	mux.HandleFunc("/api/sessions/", h.handleSession)

	// One-shot estimate for a whole deal description
	mux.HandleFunc("/api/estimate", h.handleEstimate)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type sessionResponse struct {
	ID    string             `json:"id"`
	State state.FinanceState `json:"state"`
}

type estimateResponse struct {
	State       state.FinanceState `json:"state"`
	Suggestions suggest.Result     `json:"suggestions"`
	PreQuote    *preQuoteResponse  `json:"preQuote,omitempty"`
	Warnings    []string           `json:"warnings,omitempty"`
}

// preQuoteResponse is the payment band returned while the financed terms
// are still incomplete, before a single monthly payment can be computed.
type preQuoteResponse struct {
	MinMonthly    float64 `json:"minMonthly"`
	MaxMonthly    float64 `json:"maxMonthly"`
	MinTotal      float64 `json:"minTotal"`
	MaxTotal      float64 `json:"maxTotal"`
	TermMonths    int     `json:"termMonths"`
	EstimatedFees float64 `json:"estimatedFees"`
}

// preQuote builds the band for a financed snapshot without a computed
// payment; it returns nil once the estimate is complete or for cash deals.
func preQuote(snapshot state.FinanceState) *preQuoteResponse {
	if snapshot.PaymentType == state.PaymentTypeCash || snapshot.MonthlyPayment > 0 || snapshot.CarPrice <= 0 {
		return nil
	}
	band := finance.EstimatePaymentRange(snapshot.CarPrice,
		constants.PreQuoteDownPaymentPercent, constants.PreQuoteTermMonths,
		constants.PreQuoteMinRate, constants.PreQuoteMaxRate)
	return &preQuoteResponse{
		MinMonthly:    band.MinMonthly,
		MaxMonthly:    band.MaxMonthly,
		MinTotal:      band.MinTotal,
		MaxTotal:      band.MaxTotal,
		TermMonths:    constants.PreQuoteTermMonths,
		EstimatedFees: finance.EstimateFees(snapshot.CarPrice),
	}
}

func (h *handler) handleSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed", "server.handleSessions")
		return
	}

	id, store := h.sessions.create()
	h.writeJSON(w, http.StatusCreated, sessionResponse{ID: id, State: store.Snapshot()})
}

func (h *handler) handleSession(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSession"

	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		h.respondError(w, http.StatusNotFound, "session id required", op)
		return
	}

	id := parts[0]
	store, ok := h.sessions.get(id)
	if !ok {
		h.respondError(w, http.StatusNotFound, fmt.Sprintf("unknown session %s", id), op)
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		h.writeJSON(w, http.StatusOK, sessionResponse{ID: id, State: store.Snapshot()})

	case len(parts) == 1 && r.Method == http.MethodDelete:
		h.sessions.delete(id)
		w.WriteHeader(http.StatusNoContent)

	case len(parts) == 2 && parts[1] == "actions" && r.Method == http.MethodPost:
		h.handleAction(w, r, id, store)

	case len(parts) == 2 && parts[1] == "suggestions" && r.Method == http.MethodGet:
		h.writeJSON(w, http.StatusOK, suggest.Resolve(store.Snapshot()))

	default:
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed", op)
	}
}

func (h *handler) handleAction(w http.ResponseWriter, r *http.Request, id string, store *state.Store) {
	const op = "server.handleAction"

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	if err != nil {
		h.respondError(w, http.StatusRequestEntityTooLarge, "request body too large", op)
		return
	}

	var envelope actionEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("malformed action: %v", err), op)
		return
	}

	action, known, err := decodeAction(envelope)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	if !known {
		// Unknown action types are a no-op per the action contract.
		h.logger.Debug("ignoring unknown action type",
			zap.String("op", op),
			zap.String("session", id),
			zap.String("type", envelope.Type),
		)
		h.writeJSON(w, http.StatusOK, sessionResponse{ID: id, State: store.Snapshot()})
		return
	}

	snapshot := store.Apply(action)
	h.writeJSON(w, http.StatusOK, sessionResponse{ID: id, State: snapshot})
}

func (h *handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEstimate"

	if r.Method != http.MethodPost {
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed", op)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	if err != nil {
		h.respondError(w, http.StatusRequestEntityTooLarge, "request body too large", op)
		return
	}

	var deal adapters.Deal
	if err := json.Unmarshal(body, &deal); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("malformed deal: %v", err), op)
		return
	}

	warnings := validation.ValidateDeal(adapters.ValidationInfo(deal))

	store := state.NewStore(h.logger, h.defaults)
	snapshot := adapters.Replay(store, deal)

	h.writeJSON(w, http.StatusOK, estimateResponse{
		State:       snapshot,
		Suggestions: suggest.Resolve(snapshot),
		PreQuote:    preQuote(snapshot),
		Warnings:    warnings,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed", "server.handleVersion")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Debug("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
