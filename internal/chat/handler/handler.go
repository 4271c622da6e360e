package handler

import (
	"net/http"

	"fixfurn_backend/internal/chat/agent"
	"fixfurn_backend/internal/chat/transport"
	"fixfurn_backend/platform/httpkit"
	"fixfurn_backend/platform/logger"
	"fixfurn_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// apologyReply is returned to the caller when the model itself is unreachable.
// Tool failures do not end up here, the model handles those in conversation.
const apologyReply = "Sorry, I'm having trouble reaching our assistant right now. Please try again in a moment."

type Handler struct {
	orchestrator *agent.Orchestrator
	val          *validator.Validator
	log          *logger.Logger
}

func New(orchestrator *agent.Orchestrator, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{orchestrator: orchestrator, val: val, log: log}
}

func (h *Handler) Chat(c *gin.Context) {
	var req transport.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "message is required", nil)
		return
	}

	history := make([]agent.Turn, 0, len(req.History))
	for _, t := range req.History {
		history = append(history, agent.Turn{User: t.User, Assistant: t.Assistant})
	}

	reply, err := h.orchestrator.Respond(c.Request.Context(), req.Message, history)
	if err != nil {
		h.log.WithContext(c.Request.Context()).Error("chat turn failed", "error", err)
		httpkit.JSON(c, http.StatusOK, transport.ChatResponse{Reply: apologyReply})
		return
	}

	httpkit.JSON(c, http.StatusOK, transport.ChatResponse{Reply: reply})
}
