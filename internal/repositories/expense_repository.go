package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripflow/internal/models/db_models"
)

type ExpenseRepository interface {
	Insert(ctx context.Context, expense *db_models.Expense) error
	ListByTrip(ctx context.Context, tripId string) ([]db_models.Expense, error)
	FindById(ctx context.Context, id string) (*db_models.Expense, error)
	Update(ctx context.Context, expense *db_models.Expense) error
	Delete(ctx context.Context, id string) error
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

func (r *expenseRepository) Insert(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) ListByTrip(ctx context.Context, tripId string) ([]db_models.Expense, error) {
	var expenses []db_models.Expense
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Order("expense_date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) FindById(ctx context.Context, id string) (*db_models.Expense, error) {
	var expense db_models.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) Update(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Expense{}, "id = ?", id).Error
}
