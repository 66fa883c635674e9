// Package http hosts the two inbound HTTP surfaces: the chat server that
// streams orchestration events to browser clients, and the tool server that
// exposes the tool registry over the MCP-style HTTP protocol.
package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/usecases"
	"github.com/rs/cors"
)

// GameChatServer is the chat-facing HTTP server.
type GameChatServer struct {
	Port        int           `config:"HTTP_PORT" default:"8080"`
	ClientToken string        `config:"CLIENT_TOKEN" default:""`
	Logger      *log.Logger   `resolve:""`
	ChatUseCase usecases.Chat `resolve:""`
}

// Run starts the HTTP server for the GameChatServer.
func (api GameChatServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", api.StreamChat)
	mux.HandleFunc("GET /health", HealthHandler)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	h := telemetry.Middleware("gamechat-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	return serve(ctx, api.Logger, "GameChatServer", api.Port, h)
}

// IsReady checks if the GameChatServer is ready by performing a health check.
func (api GameChatServer) IsReady(ctx context.Context) error {
	return checkHealth(api.Port)
}

// HealthHandler reports liveness.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// serve runs one HTTP server until the context is cancelled or the listener
// fails.
func serve(ctx context.Context, logger *log.Logger, name string, port int, handler http.Handler) error {
	s := &http.Server{
		Handler: handler,
		Addr:    fmt.Sprintf(":%d", port),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("%s: Listening on port %d", name, port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			logger.Printf("%s: error during shutdown: %v", name, err)
		} else {
			logger.Printf("%s: stopped", name)
		}
		return err
	case err := <-errCh:
		return err
	}
}

func checkHealth(port int) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/health", port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
