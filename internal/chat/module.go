package chat

import (
	"fixfurn_backend/internal/chat/agent"
	"fixfurn_backend/internal/chat/handler"
	apphttp "fixfurn_backend/internal/http"
	"fixfurn_backend/platform/logger"
	"fixfurn_backend/platform/validator"
)

type Module struct {
	handler *handler.Handler
}

func NewModule(orchestrator *agent.Orchestrator, val *validator.Validator, log *logger.Logger) *Module {
	return &Module{handler: handler.New(orchestrator, val, log)}
}

func (m *Module) Name() string { return "chat" }

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/chat", ctx.ChatRateLimiter.RateLimit(), m.handler.Chat)
}
