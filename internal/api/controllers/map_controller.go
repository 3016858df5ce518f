package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripflow/internal/models/request_models"
	"tripflow/internal/services"
	"tripflow/pkg/utils"
)

type MapController struct {
	mapService services.MapServiceInterface
}

func NewMapController(mapService services.MapServiceInterface) *MapController {
	return &MapController{
		mapService: mapService,
	}
}

func (m *MapController) CreateSessionHandler(c *gin.Context) {
	state, err := m.mapService.CreateSession(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Map session created")
}

func (m *MapController) SyncPlanHandler(c *gin.Context) {
	var req request_models.SyncMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := m.mapService.SyncPlan(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.TripID, req.Plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Map synchronized")
}

func (m *MapController) FocusHandler(c *gin.Context) {
	var req request_models.FocusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat and lng are required")
		return
	}

	state, err := m.mapService.Focus(c.Request.Context(), c.Param("id"), req.Lat, req.Lng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (m *MapController) GetStateHandler(c *gin.Context) {
	state, err := m.mapService.GetState(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (m *MapController) CloseSessionHandler(c *gin.Context) {
	m.mapService.CloseSession(c.Request.Context(), c.Param("id"))
	utils.RespondSuccess(c, nil, "Map session closed")
}
