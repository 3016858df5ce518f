package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripflow/internal/models/request_models"
	"tripflow/internal/services"
	"tripflow/pkg/utils"
)

type SettingsController struct {
	settingService services.SettingServiceInterface
}

func NewSettingsController(settingService services.SettingServiceInterface) *SettingsController {
	return &SettingsController{
		settingService: settingService,
	}
}

func (s *SettingsController) GetSettingsHandler(c *gin.Context) {
	settings, err := s.settingService.GetSettings(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, settings, "")
}

func (s *SettingsController) UpdateSettingsHandler(c *gin.Context) {
	var req request_models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.settingService.UpdateSettings(c.Request.Context(), c.GetString("user_id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Settings updated")
}
