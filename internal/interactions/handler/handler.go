// Package handler exposes interaction logging over HTTP.
package handler

import (
	"net/http"

	"fixfurn_backend/internal/interactions/service"
	"fixfurn_backend/internal/interactions/transport"
	"fixfurn_backend/platform/httpkit"
	"fixfurn_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles interaction HTTP requests.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new interactions handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// CreateLead handles POST /interactions/leads
func (h *Handler) CreateLead(c *gin.Context) {
	var req transport.LeadRequest
	if !bind(c, h.val, &req) {
		return
	}

	ack, err := h.svc.RecordLead(req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, ack)
}

// CreateFeedback handles POST /interactions/feedback
func (h *Handler) CreateFeedback(c *gin.Context) {
	var req transport.FeedbackRequest
	if !bind(c, h.val, &req) {
		return
	}

	ack, err := h.svc.RecordFeedback(req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, ack)
}

// CreateServiceFeedback handles POST /interactions/service-feedback
func (h *Handler) CreateServiceFeedback(c *gin.Context) {
	var req transport.ServiceFeedbackRequest
	if !bind(c, h.val, &req) {
		return
	}

	ack, err := h.svc.RecordServiceFeedback(req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, ack)
}

func bind(c *gin.Context, val *validator.Validator, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	if err := val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "missing required fields", err.Error())
		return false
	}
	return true
}
