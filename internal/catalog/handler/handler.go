// Package handler exposes catalog lookup over HTTP.
package handler

import (
	"net/http"

	"fixfurn_backend/internal/catalog/service"
	"fixfurn_backend/internal/catalog/transport"
	"fixfurn_backend/platform/httpkit"
	"fixfurn_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles catalog HTTP requests.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new catalog handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Search handles GET /catalog/search?query=...
func (h *Handler) Search(c *gin.Context) {
	var req transport.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query is required", nil)
		return
	}

	result := h.svc.Lookup(req.Query)
	if !result.OK {
		httpkit.JSON(c, http.StatusNotFound, result)
		return
	}
	httpkit.OK(c, result)
}
