package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripflow/internal/models/request_models"
	"tripflow/internal/services"
	"tripflow/pkg/utils"
)

type PlannerController struct {
	planService services.PlanServiceInterface
}

func NewPlannerController(planService services.PlanServiceInterface) *PlannerController {
	return &PlannerController{
		planService: planService,
	}
}

func (p *PlannerController) GeneratePlanHandler(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "prompt is required")
		return
	}

	plan, err := p.planService.GeneratePlan(c.Request.Context(), c.GetString("user_id"), req.Prompt)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Travel plan created successfully")
}

func (p *PlannerController) PlaceDetailsHandler(c *gin.Context) {
	var req request_models.PlaceDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name is required")
		return
	}

	details, err := p.planService.GeneratePlaceDetails(c.Request.Context(), c.GetString("user_id"), req.Name, req.Context)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, details, "Place details fetched")
}
