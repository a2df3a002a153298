package controllers

import (
	"cobalt-screening-service/internal/app/config"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{InternalConfig: internalConfig}
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, map[string]string{
		"version": ctrl.InternalConfig.App.Version,
		"env":     ctrl.InternalConfig.App.Env,
	})
}
