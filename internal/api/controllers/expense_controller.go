package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripflow/internal/models/request_models"
	"tripflow/internal/services"
	"tripflow/pkg/utils"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseController(expenseService services.ExpenseServiceInterface) *ExpenseController {
	return &ExpenseController{
		expenseService: expenseService,
	}
}

func (e *ExpenseController) AddExpenseHandler(c *gin.Context) {
	var req request_models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	expense, err := e.expenseService.AddExpense(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, expense, "Expense recorded")
}

func (e *ExpenseController) ListExpensesHandler(c *gin.Context) {
	expenses, err := e.expenseService.ListExpenses(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, expenses, "")
}

func (e *ExpenseController) UpdateExpenseHandler(c *gin.Context) {
	var req request_models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := e.expenseService.UpdateExpense(c.Request.Context(), c.Param("expenseId"), c.GetString("user_id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Expense updated")
}

func (e *ExpenseController) DeleteExpenseHandler(c *gin.Context) {
	if err := e.expenseService.DeleteExpense(c.Request.Context(), c.Param("expenseId"), c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Expense deleted")
}

func (e *ExpenseController) StatsHandler(c *gin.Context) {
	stats, err := e.expenseService.Stats(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "")
}
