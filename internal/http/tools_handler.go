package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/session"
	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/tools"
)

// SessionHeader carries the conversation session ID on every tool call.
const SessionHeader = "X-Session-ID"

// ToolsHandler exposes the five tool operations over HTTP for the
// conversational orchestrator.
type ToolsHandler struct {
	tools    *tools.Tools
	sessions *session.Manager
}

// NewToolsHandler wires the tool operations and session manager into an
// HTTP handler.
func NewToolsHandler(t *tools.Tools, sessions *session.Manager) *ToolsHandler {
	return &ToolsHandler{tools: t, sessions: sessions}
}

// Register mounts the tool routes on the router.
func (h *ToolsHandler) Register(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/catalog/browse", h.Browse)
		r.Post("/cart/items", h.AddItem)
		r.Get("/cart", h.ViewCart)
		r.Post("/orders", h.PlaceOrder)
		r.Get("/orders/last", h.LastOrder)
		r.Delete("/session", h.EndSession)
	})
}

type BrowseRequestDTO struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

type AddItemRequestDTO struct {
	ProductRef string `json:"product_ref"`
	Quantity   int    `json:"quantity"`
	Size       string `json:"size"`
}

// ToolResponse wraps the spoken-text result of a tool call.
type ToolResponse struct {
	Result string `json:"result"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (h *ToolsHandler) Browse(w http.ResponseWriter, r *http.Request) {
	var req BrowseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := h.tools.ShowCatalog(req.Query, req.Category)
	if err != nil {
		handleToolError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ToolResponse{Result: result})
}

func (h *ToolsHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "missing_session", "X-Session-ID header is required")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductRef == "" {
		respondError(w, http.StatusBadRequest, "missing_product_ref", "product_ref is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart := h.sessions.Cart(sessionID)
	result, err := h.tools.AddToCart(cart, req.ProductRef, req.Quantity, req.Size)
	if err != nil {
		handleToolError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ToolResponse{Result: result})
}

func (h *ToolsHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "missing_session", "X-Session-ID header is required")
		return
	}

	cart := h.sessions.Cart(sessionID)
	result, err := h.tools.ViewCart(cart)
	if err != nil {
		handleToolError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ToolResponse{Result: result})
}

func (h *ToolsHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "missing_session", "X-Session-ID header is required")
		return
	}

	cart := h.sessions.Cart(sessionID)
	result, err := h.tools.PlaceOrder(cart)
	if err != nil {
		handleToolError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ToolResponse{Result: result})
}

func (h *ToolsHandler) LastOrder(w http.ResponseWriter, r *http.Request) {
	result, err := h.tools.GetLastOrder()
	if err != nil {
		handleToolError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ToolResponse{Result: result})
}

func (h *ToolsHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "missing_session", "X-Session-ID header is required")
		return
	}

	h.sessions.End(sessionID)
	respondJSON(w, http.StatusOK, ToolResponse{Result: "Session ended."})
}

// handleToolError maps tool failures to HTTP responses. The text kept for
// the orchestrator stays apologetic and non-technical; the real error goes
// to the log.
func handleToolError(w http.ResponseWriter, err error) {
	log.Printf("tool call failed: %v", err)
	if errors.Is(err, tools.ErrLedgerWrite) {
		respondError(w, http.StatusServiceUnavailable, "order_not_recorded",
			"Sorry, I couldn't record your order just now. Please try again in a moment.")
		return
	}
	respondError(w, http.StatusInternalServerError, "internal_error",
		"Sorry, something went wrong on my end.")
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}
