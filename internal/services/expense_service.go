package services

import (
	"context"

	"tripflow/internal/models/db_models"
	"tripflow/internal/models/request_models"
	"tripflow/internal/models/response_models"
	"tripflow/internal/repositories"
	"tripflow/pkg/utils"
)

type ExpenseServiceInterface interface {
	AddExpense(ctx context.Context, tripId, userId string, req request_models.CreateExpenseRequest) (*response_models.ExpenseResponse, error)
	ListExpenses(ctx context.Context, tripId, userId string) ([]response_models.ExpenseResponse, error)
	UpdateExpense(ctx context.Context, expenseId, userId string, req request_models.UpdateExpenseRequest) error
	DeleteExpense(ctx context.Context, expenseId, userId string) error
	Stats(ctx context.Context, tripId, userId string) (*response_models.ExpenseStats, error)
}

type ExpenseService struct {
	expenseRepo repositories.ExpenseRepository
	tripRepo    repositories.TripRepository
}

func NewExpenseService(
	expenseRepo repositories.ExpenseRepository,
	tripRepo repositories.TripRepository,
) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		tripRepo:    tripRepo,
	}
}

// ownedTrip resolves the trip and enforces that it belongs to the caller.
func (e *ExpenseService) ownedTrip(ctx context.Context, tripId, userId string) (*db_models.Trip, error) {
	trip, err := e.tripRepo.FindByIdForUser(ctx, tripId, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (e *ExpenseService) AddExpense(ctx context.Context, tripId, userId string, req request_models.CreateExpenseRequest) (*response_models.ExpenseResponse, error) {
	trip, err := e.ownedTrip(ctx, tripId, userId)
	if err != nil {
		return nil, err
	}

	expense := &db_models.Expense{
		TripID:      trip.ID,
		Amount:      req.Amount,
		Category:    req.Category,
		ExpenseDate: req.ExpenseDate,
		Notes:       req.Notes,
	}
	if err := e.expenseRepo.Insert(ctx, expense); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toExpenseResponse(*expense)
	return &resp, nil
}

func (e *ExpenseService) ListExpenses(ctx context.Context, tripId, userId string) ([]response_models.ExpenseResponse, error) {
	if _, err := e.ownedTrip(ctx, tripId, userId); err != nil {
		return nil, err
	}

	expenses, err := e.expenseRepo.ListByTrip(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		out = append(out, toExpenseResponse(expense))
	}
	return out, nil
}

func (e *ExpenseService) UpdateExpense(ctx context.Context, expenseId, userId string, req request_models.UpdateExpenseRequest) error {
	expense, err := e.ownedExpense(ctx, expenseId, userId)
	if err != nil {
		return err
	}

	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}

	if err := e.expenseRepo.Update(ctx, expense); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (e *ExpenseService) DeleteExpense(ctx context.Context, expenseId, userId string) error {
	expense, err := e.ownedExpense(ctx, expenseId, userId)
	if err != nil {
		return err
	}
	if err := e.expenseRepo.Delete(ctx, expense.ID.String()); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// Stats is a plain reduction over the trip's expense list.
func (e *ExpenseService) Stats(ctx context.Context, tripId, userId string) (*response_models.ExpenseStats, error) {
	expenses, err := e.ListExpenses(ctx, tripId, userId)
	if err != nil {
		return nil, err
	}

	stats := &response_models.ExpenseStats{
		ByCategory: make(map[string]float64),
		Count:      len(expenses),
	}
	for _, expense := range expenses {
		stats.Total += expense.Amount
		stats.ByCategory[expense.Category] += expense.Amount
	}
	return stats, nil
}

func (e *ExpenseService) ownedExpense(ctx context.Context, expenseId, userId string) (*db_models.Expense, error) {
	expense, err := e.expenseRepo.FindById(ctx, expenseId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if expense == nil {
		return nil, utils.ErrExpenseNotFound
	}
	if _, err := e.ownedTrip(ctx, expense.TripID.String(), userId); err != nil {
		return nil, err
	}
	return expense, nil
}

func toExpenseResponse(expense db_models.Expense) response_models.ExpenseResponse {
	return response_models.ExpenseResponse{
		ID:          expense.ID.String(),
		TripID:      expense.TripID.String(),
		Amount:      expense.Amount,
		Category:    expense.Category,
		ExpenseDate: expense.ExpenseDate,
		Notes:       expense.Notes,
	}
}
