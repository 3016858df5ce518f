package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripflow/internal/models/db_models"
	"tripflow/internal/models/request_models"
	"tripflow/pkg/utils"
)

type fakeTripRepo struct {
	trips map[string]*db_models.Trip // key: tripId + "|" + userId
}

func (f *fakeTripRepo) Insert(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error) {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	f.trips[trip.ID.String()+"|"+trip.UserID.String()] = trip
	return trip.ID, nil
}

func (f *fakeTripRepo) ListByUser(ctx context.Context, userId string) ([]db_models.Trip, error) {
	var out []db_models.Trip
	for _, trip := range f.trips {
		if trip.UserID.String() == userId {
			out = append(out, *trip)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) FindByIdForUser(ctx context.Context, tripId, userId string) (*db_models.Trip, error) {
	return f.trips[tripId+"|"+userId], nil
}

func (f *fakeTripRepo) Delete(ctx context.Context, tripId, userId string) error {
	delete(f.trips, tripId+"|"+userId)
	return nil
}

type fakeExpenseRepo struct {
	expenses map[string]*db_models.Expense
}

func (f *fakeExpenseRepo) Insert(ctx context.Context, expense *db_models.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	f.expenses[expense.ID.String()] = expense
	return nil
}

func (f *fakeExpenseRepo) ListByTrip(ctx context.Context, tripId string) ([]db_models.Expense, error) {
	var out []db_models.Expense
	for _, e := range f.expenses {
		if e.TripID.String() == tripId {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) FindById(ctx context.Context, id string) (*db_models.Expense, error) {
	return f.expenses[id], nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, expense *db_models.Expense) error {
	f.expenses[expense.ID.String()] = expense
	return nil
}

func (f *fakeExpenseRepo) Delete(ctx context.Context, id string) error {
	delete(f.expenses, id)
	return nil
}

func newExpenseFixture(t *testing.T) (ExpenseServiceInterface, *fakeExpenseRepo, string, string) {
	t.Helper()
	tripRepo := &fakeTripRepo{trips: make(map[string]*db_models.Trip)}
	expenseRepo := &fakeExpenseRepo{expenses: make(map[string]*db_models.Expense)}

	userId := uuid.New()
	trip := &db_models.Trip{UserID: userId, Title: "Beijing"}
	tripId, err := tripRepo.Insert(context.Background(), trip)
	require.NoError(t, err)

	svc := NewExpenseService(expenseRepo, tripRepo)
	return svc, expenseRepo, tripId.String(), userId.String()
}

func TestAddExpenseToOwnedTrip(t *testing.T) {
	svc, repo, tripId, userId := newExpenseFixture(t)

	resp, err := svc.AddExpense(context.Background(), tripId, userId, request_models.CreateExpenseRequest{
		Amount:      128.5,
		Category:    "Food",
		ExpenseDate: "2026-08-30",
		Notes:       "roast duck",
	})

	require.NoError(t, err)
	assert.Equal(t, tripId, resp.TripID)
	assert.Equal(t, 128.5, resp.Amount)
	assert.Len(t, repo.expenses, 1)
}

func TestAddExpenseToForeignTrip(t *testing.T) {
	svc, _, tripId, _ := newExpenseFixture(t)

	_, err := svc.AddExpense(context.Background(), tripId, uuid.NewString(), request_models.CreateExpenseRequest{
		Amount:      10,
		Category:    "Food",
		ExpenseDate: "2026-08-30",
	})

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestUpdateExpensePartialFields(t *testing.T) {
	svc, repo, tripId, userId := newExpenseFixture(t)

	resp, err := svc.AddExpense(context.Background(), tripId, userId, request_models.CreateExpenseRequest{
		Amount:      50,
		Category:    "Food",
		ExpenseDate: "2026-08-30",
		Notes:       "snack",
	})
	require.NoError(t, err)

	newAmount := 75.0
	err = svc.UpdateExpense(context.Background(), resp.ID, userId, request_models.UpdateExpenseRequest{
		Amount: &newAmount,
	})
	require.NoError(t, err)

	stored := repo.expenses[resp.ID]
	assert.Equal(t, 75.0, stored.Amount)
	assert.Equal(t, "Food", stored.Category)
	assert.Equal(t, "snack", stored.Notes)
}

func TestUpdateExpenseByNonOwner(t *testing.T) {
	svc, _, tripId, userId := newExpenseFixture(t)

	resp, err := svc.AddExpense(context.Background(), tripId, userId, request_models.CreateExpenseRequest{
		Amount:      50,
		Category:    "Food",
		ExpenseDate: "2026-08-30",
	})
	require.NoError(t, err)

	newAmount := 1.0
	err = svc.UpdateExpense(context.Background(), resp.ID, uuid.NewString(), request_models.UpdateExpenseRequest{
		Amount: &newAmount,
	})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestDeleteExpense(t *testing.T) {
	svc, repo, tripId, userId := newExpenseFixture(t)

	resp, err := svc.AddExpense(context.Background(), tripId, userId, request_models.CreateExpenseRequest{
		Amount:      50,
		Category:    "Food",
		ExpenseDate: "2026-08-30",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExpense(context.Background(), resp.ID, userId))
	assert.Empty(t, repo.expenses)
}

func TestDeleteMissingExpense(t *testing.T) {
	svc, _, _, userId := newExpenseFixture(t)
	err := svc.DeleteExpense(context.Background(), uuid.NewString(), userId)
	assert.ErrorIs(t, err, utils.ErrExpenseNotFound)
}

func TestStatsReducesByCategory(t *testing.T) {
	svc, _, tripId, userId := newExpenseFixture(t)

	seed := []request_models.CreateExpenseRequest{
		{Amount: 100, Category: "Food", ExpenseDate: "2026-08-28"},
		{Amount: 50, Category: "Food", ExpenseDate: "2026-08-29"},
		{Amount: 300, Category: "Accommodation", ExpenseDate: "2026-08-29"},
	}
	for _, req := range seed {
		_, err := svc.AddExpense(context.Background(), tripId, userId, req)
		require.NoError(t, err)
	}

	stats, err := svc.Stats(context.Background(), tripId, userId)
	require.NoError(t, err)

	assert.Equal(t, 450.0, stats.Total)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 150.0, stats.ByCategory["Food"])
	assert.Equal(t, 300.0, stats.ByCategory["Accommodation"])
}

func TestStatsEmptyTrip(t *testing.T) {
	svc, _, tripId, userId := newExpenseFixture(t)

	stats, err := svc.Stats(context.Background(), tripId, userId)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.Count)
	assert.Empty(t, stats.ByCategory)
}
