package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/adapters/outbound/llm"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/adapters/outbound/rawg"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/adapters/outbound/toolclient"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/assistant"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/usecases"
)

// NewGameChatApp creates and returns a new instance of the GameChat application.
func NewGameChatApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&time.InitCurrentTimeProvider{},
			&rawg.InitClient{},
			&llm.InitAssistantClient{},

			&assistant.InitToolRegistry{},
			&toolclient.InitToolInvoker{},

			&usecases.InitChat{},
		).
		Host(
			&http.GameChatServer{},
			&http.ToolServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
