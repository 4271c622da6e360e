// Package interactions provides the interaction logging bounded context module.
package interactions

import (
	apphttp "fixfurn_backend/internal/http"
	"fixfurn_backend/internal/interactions/handler"
	"fixfurn_backend/internal/interactions/repository"
	"fixfurn_backend/internal/interactions/service"
	"fixfurn_backend/platform/logger"
	"fixfurn_backend/platform/validator"
)

// Module is the interactions bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the interactions module.
func NewModule(store *repository.Store, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(store, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "interactions"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts interaction routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/interactions/leads", m.handler.CreateLead)
	ctx.V1.POST("/interactions/feedback", m.handler.CreateFeedback)
	ctx.V1.POST("/interactions/service-feedback", m.handler.CreateServiceFeedback)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
