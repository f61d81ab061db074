package fleet

import (
	"strings"
	"testing"

	"fleet-maintenance-api-server/internal/apperr"
	"fleet-maintenance-api-server/internal/models"
	"fleet-maintenance-api-server/internal/uploads"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateExpenseWithReceipt(t *testing.T) {
	svc, _, _ := newTestService(t)

	e, err := svc.CreateExpense(ctx(), ExpenseInput{Plate: "AA", Concept: "Tyres", Cost: models.ToNumber("520000")},
		&uploads.Upload{OriginalName: "boleta.jpg", ContentType: "image/jpeg", Body: strings.NewReader("jpg")})
	require.NoError(t, err)

	assert.Equal(t, float64(520000), e.Cost)
	assert.Equal(t, "2024-06-01", e.Date)
	require.NotNil(t, e.Receipt)
	assert.Equal(t, "boleta.jpg", e.Receipt.OriginalName)
	require.NotNil(t, e.ReceiptURL)
	assert.True(t, strings.HasPrefix(*e.ReceiptURL, "/uploads/receipts/"))
}

func TestCreateExpenseValidation(t *testing.T) {
	svc, repo, _ := newTestService(t)

	for _, in := range []ExpenseInput{
		{Concept: "c", Cost: 10},
		{Plate: "AA", Cost: 10},
		{Plate: "AA", Concept: "c", Cost: 0},
		{Plate: "AA", Concept: "c", Cost: -5},
		{Plate: "AA", Concept: "c", Cost: models.ToNumber("abc")},
	} {
		_, err := svc.CreateExpense(ctx(), in, nil)
		assert.True(t, apperr.IsValidation(err), "%+v", in)
	}
	expenses, _ := repo.Expenses.List(ctx())
	assert.Empty(t, expenses)
}

func TestListExpensesWithBudget(t *testing.T) {
	svc, _, _ := newTestService(t)
	svc.CreateExpense(ctx(), ExpenseInput{Plate: "AA", Concept: "a", Cost: 20000000}, nil)

	list, err := svc.ListExpenses(ctx())
	require.NoError(t, err)
	require.Len(t, list.Expenses, 1)
	assert.Nil(t, list.Expenses[0].ReceiptURL)
	assert.Equal(t, models.Budget{Annual: 15000000, Spent: 20000000, Remaining: 0}, list.Budget)
}

func TestSetBudget(t *testing.T) {
	svc, _, notifier := newTestService(t)
	svc.CreateExpense(ctx(), ExpenseInput{Plate: "AA", Concept: "a", Cost: 1000}, nil)

	budget, err := svc.SetBudget(ctx(), 5000)
	require.NoError(t, err)
	assert.Equal(t, models.Budget{Annual: 5000, Spent: 1000, Remaining: 4000}, budget)
	assert.Contains(t, notifier.Events(), "budget.updated")

	_, err = svc.SetBudget(ctx(), 0)
	assert.True(t, apperr.IsValidation(err))
	_, err = svc.SetBudget(ctx(), models.ToNumber("lots"))
	assert.True(t, apperr.IsValidation(err))

	current, err := svc.Budget(ctx())
	require.NoError(t, err)
	assert.Equal(t, float64(5000), current.Annual)
}
