// Package webhook exposes the inbound lead endpoint.
package webhook

import (
	apphttp "solar_lead_backend/internal/http"
)

// Module is the webhook bounded context module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates the webhook module around a lead processor.
func NewModule(processor LeadProcessor) *Module {
	return &Module{handler: NewHandler(processor)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "webhook"
}

// RegisterRoutes mounts POST /webhook on the root engine.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Engine.POST("/webhook", m.handler.HandleLead)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
