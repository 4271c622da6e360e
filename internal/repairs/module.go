// Package repairs provides the repair estimation bounded context module.
package repairs

import (
	apphttp "fixfurn_backend/internal/http"
	"fixfurn_backend/internal/repairs/handler"
	"fixfurn_backend/internal/repairs/repository"
	"fixfurn_backend/internal/repairs/service"
	"fixfurn_backend/platform/logger"
	"fixfurn_backend/platform/validator"
)

// Module is the repairs bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the repairs module over a loaded rule table.
func NewModule(rules repository.RuleTable, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(rules, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "repairs"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts repairs routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/repairs/estimate", m.handler.Estimate)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
