// server/internal/fleet/expenses.go
package fleet

import (
	"context"
	"fmt"

	"fleet-maintenance-api-server/internal/apperr"
	"fleet-maintenance-api-server/internal/derive"
	"fleet-maintenance-api-server/internal/models"
	"fleet-maintenance-api-server/internal/uploads"
)

type ExpenseInput struct {
	Plate   string        `json:"plate" form:"plate"`
	Concept string        `json:"concept" form:"concept"`
	Cost    models.Number `json:"cost" form:"cost"`
	Date    string        `json:"date" form:"date"`
}

type ExpenseList struct {
	Expenses []models.ExpenseView `json:"expenses"`
	Budget   models.Budget        `json:"budget"`
}

func (s *Service) ListExpenses(ctx context.Context) (ExpenseList, error) {
	expenses, err := s.repo.Expenses.List(ctx)
	if err != nil {
		return ExpenseList{}, fmt.Errorf("failed to list expenses: %w", err)
	}
	budget, err := s.budget(ctx, expenses)
	if err != nil {
		return ExpenseList{}, err
	}

	views := make([]models.ExpenseView, 0, len(expenses))
	for _, e := range expenses {
		views = append(views, s.expenseView(e))
	}
	return ExpenseList{Expenses: views, Budget: budget}, nil
}

// CreateExpense stores the receipt first, if any, then the expense.
func (s *Service) CreateExpense(ctx context.Context, in ExpenseInput, receipt *uploads.Upload) (models.ExpenseView, error) {
	if err := firstError(
		required("plate", in.Plate),
		required("concept", in.Concept),
	); err != nil {
		return models.ExpenseView{}, err
	}
	if in.Cost.Float() <= 0 {
		return models.ExpenseView{}, apperr.NewValidationError("cost", "must be a number greater than zero")
	}

	var meta *models.FileMeta
	if receipt != nil {
		saved, err := s.files.Save(ctx, uploads.FolderReceipts, *receipt)
		if err != nil {
			return models.ExpenseView{}, fmt.Errorf("failed to store receipt: %w", err)
		}
		meta = &saved
	}

	expense, err := s.repo.Expenses.Create(ctx, func(id int64) models.Expense {
		return models.Expense{
			ID:      id,
			Plate:   in.Plate,
			Concept: in.Concept,
			Cost:    in.Cost.Float(),
			Date:    orDefault(in.Date, s.todayString()),
			Receipt: meta,
		}
	})
	if err != nil {
		return models.ExpenseView{}, fmt.Errorf("failed to create expense: %w", err)
	}
	view := s.expenseView(expense)
	s.changed("expense", "created", view)
	return view, nil
}

func (s *Service) Budget(ctx context.Context) (models.Budget, error) {
	expenses, err := s.repo.Expenses.List(ctx)
	if err != nil {
		return models.Budget{}, fmt.Errorf("failed to list expenses: %w", err)
	}
	return s.budget(ctx, expenses)
}

// SetBudget replaces the annual amount; it must be positive.
func (s *Service) SetBudget(ctx context.Context, annual models.Number) (models.Budget, error) {
	if annual.Float() <= 0 {
		return models.Budget{}, apperr.NewValidationError("annual", "must be a number greater than zero")
	}
	if err := s.repo.Budget.Set(ctx, annual.Float()); err != nil {
		return models.Budget{}, fmt.Errorf("failed to save budget: %w", err)
	}
	budget, err := s.Budget(ctx)
	if err != nil {
		return models.Budget{}, err
	}
	s.changed("budget", "updated", budget)
	return budget, nil
}

func (s *Service) budget(ctx context.Context, expenses []models.Expense) (models.Budget, error) {
	annual, err := s.repo.Budget.Get(ctx)
	if err != nil {
		return models.Budget{}, fmt.Errorf("failed to get budget: %w", err)
	}
	return derive.Budget(annual, expenses), nil
}

func (s *Service) expenseView(e models.Expense) models.ExpenseView {
	view := models.ExpenseView{Expense: e}
	if e.Receipt != nil && e.Receipt.FileName != "" {
		url := s.files.URL(uploads.FolderReceipts, e.Receipt.FileName)
		view.ReceiptURL = &url
	}
	return view
}
