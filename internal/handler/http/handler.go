// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

// Package http exposes the AgroDesk REST API: authentication, the
// ownership-scoped record resources, user administration with the
// dependency-aware deletion flow, roles, and the public form endpoints.
package http

import (
	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/service"
)

// Handler carries the service aggregate and base logger shared by all
// routes. Init builds the chi router.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	return &Handler{services: services, logger: logger}
}
