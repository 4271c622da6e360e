// Package catalog provides the catalog bounded context module.
package catalog

import (
	"fixfurn_backend/internal/catalog/handler"
	"fixfurn_backend/internal/catalog/repository"
	"fixfurn_backend/internal/catalog/service"
	apphttp "fixfurn_backend/internal/http"
	"fixfurn_backend/platform/logger"
	"fixfurn_backend/platform/validator"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the catalog module over already-loaded data.
func NewModule(repo repository.Repository, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/catalog/search", m.handler.Search)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
