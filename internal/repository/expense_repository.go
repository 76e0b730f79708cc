package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jonmaso-hash/111-backend/internal/model"
)

// ExpenseRepository defines expense persistence operations.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	FindByID(ctx context.Context, id uint) (*model.Expense, error)
	List(ctx context.Context) ([]model.Expense, error)
	Replace(ctx context.Context, id uint, expense *model.Expense) (int64, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository builds a GORM-backed repository.
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) FindByID(ctx context.Context, id uint) (*model.Expense, error) {
	var expense model.Expense
	if err := r.db.WithContext(ctx).First(&expense, id).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) List(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := r.db.WithContext(ctx).Order("id").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// Replace overwrites every mutable column of the row, a nil Title becomes
// a stored NULL. Returns the number of rows matched.
func (r *expenseRepository) Replace(ctx context.Context, id uint, expense *model.Expense) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Expense{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       expense.Title,
			"description": expense.Description,
			"amount":      expense.Amount,
			"date":        expense.Date,
			"category":    expense.Category,
			"user_id":     expense.UserID,
		})
	return res.RowsAffected, res.Error
}

func (r *expenseRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Expense{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
