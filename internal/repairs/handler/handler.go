// Package handler exposes repair estimation over HTTP.
package handler

import (
	"net/http"

	"fixfurn_backend/internal/repairs/service"
	"fixfurn_backend/internal/repairs/transport"
	"fixfurn_backend/platform/httpkit"
	"fixfurn_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles repair estimate HTTP requests.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new repairs handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Estimate handles POST /repairs/estimate
func (h *Handler) Estimate(c *gin.Context) {
	var req transport.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "issue is required", nil)
		return
	}

	result := h.svc.Estimate(req.Issue, req.Material, req.SizeCategory)
	if !result.OK {
		httpkit.JSON(c, http.StatusUnprocessableEntity, result)
		return
	}
	httpkit.OK(c, result)
}
