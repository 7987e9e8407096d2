package handler

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
)

// ResponseResolver produz uma resposta para a mensagem do usuário.
type ResponseResolver interface {
	Respond(text string) string
}

type chatRequest struct {
	// Ponteiro para distinguir campo ausente de string vazia.
	UserInput *string `json:"user_input"`
}

type chatResponse struct {
	BotResponse string `json:"bot_response"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ChatHandler atende POST /chat: decodifica a mensagem do usuário e devolve
// a resposta do bot.
type ChatHandler struct {
	resolver ResponseResolver
}

// NewChatHandler cria o handler de chat.
func NewChatHandler(resolver ResponseResolver) *ChatHandler {
	return &ChatHandler{resolver: resolver}
}

func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Only POST requests are allowed."})
		return
	}

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	var payload chatRequest
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if payload.UserInput == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "User input is required"})
		return
	}

	botResponse := h.resolver.Respond(*payload.UserInput)
	writeJSON(w, http.StatusOK, chatResponse{BotResponse: botResponse})
}

// writeJSON serializa a resposta com o status informado.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Erro ao escrever resposta JSON: %v", err)
	}
}
