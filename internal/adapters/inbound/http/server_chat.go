package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
)

// chatRequest is the chat endpoint request body. The client token travels in
// the body so browser clients need no custom headers.
type chatRequest struct {
	Message     string               `json:"message"`
	History     []domain.ChatMessage `json:"history"`
	ClientToken string               `json:"clientToken"`
}

// StreamChat runs one conversational turn and streams orchestration events
// as server-sent events, one JSON frame per event.
func (api GameChatServer) StreamChat(w http.ResponseWriter, r *http.Request) {
	req := chatRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.NewValidationErr("invalid request body"))
		return
	}

	if api.ClientToken != "" && req.ClientToken != api.ClientToken {
		respondError(w, domain.NewAuthErr("Invalid or missing client token"))
		return
	}

	if req.Message == "" {
		respondError(w, domain.NewValidationErr("Message is required"))
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, domain.NewInvalidStateErr("streaming not supported"))
		return
	}

	events, err := api.ChatUseCase.Execute(r.Context(), req.Message, req.History)
	if err != nil {
		api.Logger.Printf("StreamChat: failed to start: %v", err)
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	for event := range events {
		dataBytes, err := json.Marshal(event)
		if err != nil {
			api.Logger.Printf("StreamChat: failed to marshal event: %v", err)
			continue
		}

		if _, err := fmt.Fprintf(w, "data: %s\n\n", string(dataBytes)); err != nil {
			api.Logger.Printf("StreamChat: error during streaming: %v", err)
			return
		}
		flusher.Flush()
	}
}
