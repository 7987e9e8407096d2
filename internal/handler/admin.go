package handler

import (
	"encoding/json"
	"net/http"

	"faqbot/internal/admin"
)

type pendingResponse struct {
	Pending []string `json:"pending"`
}

type answerRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

type resolveRequest struct {
	Question *string `json:"question"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// AdminHandler expõe a superfície de operação do administrador: listar
// perguntas pendentes, fornecer respostas e marcar perguntas como resolvidas.
type AdminHandler struct {
	ledger *admin.Ledger
}

// NewAdminHandler cria o handler administrativo.
func NewAdminHandler(ledger *admin.Ledger) *AdminHandler {
	return &AdminHandler{ledger: ledger}
}

// Pending atende GET /admin/queries.
func (h *AdminHandler) Pending(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Only GET requests are allowed."})
		return
	}
	writeJSON(w, http.StatusOK, pendingResponse{Pending: h.ledger.Pending()})
}

// Answer atende POST /admin/answer.
func (h *AdminHandler) Answer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Only POST requests are allowed."})
		return
	}

	var payload answerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if payload.Question == nil || payload.Answer == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Question and answer are required"})
		return
	}

	h.ledger.ProvideAnswer(*payload.Question, *payload.Answer)
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// Resolve atende POST /admin/resolve.
func (h *AdminHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Only POST requests are allowed."})
		return
	}

	var payload resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if payload.Question == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Question is required"})
		return
	}

	h.ledger.Resolve(*payload.Question)
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
