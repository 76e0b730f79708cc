package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jonmaso-hash/111-backend/internal/cache"
	"github.com/jonmaso-hash/111-backend/internal/errors"
	"github.com/jonmaso-hash/111-backend/internal/model"
	"github.com/jonmaso-hash/111-backend/internal/repository"
)

const expenseCacheTTL = 5 * time.Minute

// ExpenseService exposes expense domain operations.
type ExpenseService interface {
	CreateExpense(ctx context.Context, expense *model.Expense) (*model.Expense, error)
	GetExpense(ctx context.Context, id uint) (*model.Expense, error)
	ListExpenses(ctx context.Context) ([]model.Expense, error)
	ReplaceExpense(ctx context.Context, id uint, expense *model.Expense) error
}

type expenseService struct {
	expenses repository.ExpenseRepository
	users    repository.UserRepository
	cache    *cache.Client
}

// NewExpenseService builds an ExpenseService. The user repository backs
// the owner-existence check on creation.
func NewExpenseService(expenses repository.ExpenseRepository, users repository.UserRepository, cache *cache.Client) ExpenseService {
	return &expenseService{expenses: expenses, users: users, cache: cache}
}

func (s *expenseService) cacheKey(id uint) string {
	return fmt.Sprintf("expense:%d", id)
}

// CreateExpense checks that the owner exists before inserting, so a bad
// user_id never leaves a row behind.
func (s *expenseService) CreateExpense(ctx context.Context, expense *model.Expense) (*model.Expense, error) {
	if _, err := s.users.FindByID(ctx, expense.UserID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if err := s.expenses.Create(ctx, expense); err != nil {
		// The owner can vanish between the check and the insert.
		if stderrors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) GetExpense(ctx context.Context, id uint) (*model.Expense, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Expense
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrExpenseNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(expense); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, expenseCacheTTL)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context) ([]model.Expense, error) {
	return s.expenses.List(ctx)
}

// ReplaceExpense overwrites every column of the row. Absence of the row is
// detected from the affected-row count, with a follow-up existence read to
// tell "no such row" apart from "nothing changed".
func (s *expenseService) ReplaceExpense(ctx context.Context, id uint, expense *model.Expense) error {
	rows, err := s.expenses.Replace(ctx, id, expense)
	if err != nil {
		if stderrors.Is(err, gorm.ErrForeignKeyViolated) || stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", errors.ErrConstraint, err.Error())
		}
		return err
	}
	if rows == 0 {
		exists, err := s.expenses.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return errors.ErrExpenseNotFound
		}
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
