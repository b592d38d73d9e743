package community

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nivas/backend/internal/domain/community"
	"github.com/nivas/backend/internal/domain/identity"
	"github.com/nivas/backend/internal/domain/shared"
	"github.com/nivas/backend/internal/infrastructure/email"
)

// ExpenseService handles the society expense ledger and its transparency
// dashboard. New expenses are announced to residents by email, best-effort.
type ExpenseService struct {
	expenseRepo community.ExpenseRepository
	accountRepo identity.AccountRepository
	notifier    email.Notifier
	logger      *zap.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	expenseRepo community.ExpenseRepository,
	accountRepo identity.AccountRepository,
	notifier email.Notifier,
	logger *zap.Logger,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		accountRepo: accountRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Add records a society outgoing and announces it to residents
func (s *ExpenseService) Add(ctx context.Context, input AddExpenseInput) (*ExpenseInfo, error) {
	expense, err := community.NewExpense(
		input.SocietyID,
		input.CreatedBy,
		input.Category,
		input.Amount,
		input.Description,
		input.IncurredAt,
	)
	if err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		s.logger.Error("Failed to record expense", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record expense")
	}

	s.notifyResidents(input.SocietyID,
		fmt.Sprintf("Society expense recorded: %s", expense.Category),
		fmt.Sprintf("An expense of %s was recorded under %s.\r\n\r\n%s\r\n",
			expense.Amount.StringFixed(2), expense.Category, expense.Description),
	)

	s.logger.Info("Expense recorded",
		zap.String("society_id", input.SocietyID.String()),
		zap.String("expense_id", expense.ID.String()),
		zap.String("category", expense.Category),
	)
	info := NewExpenseInfo(expense)
	return &info, nil
}

// ListAll returns every expense of the society
func (s *ExpenseService) ListAll(ctx context.Context, societyID uuid.UUID) ([]ExpenseInfo, error) {
	expenses, err := s.expenseRepo.FindAll(ctx, societyID)
	if err != nil {
		return nil, err
	}
	infos := make([]ExpenseInfo, len(expenses))
	for i, expense := range expenses {
		infos[i] = NewExpenseInfo(expense)
	}
	return infos, nil
}

// Summary returns the per-category totals residents see on the dashboard
func (s *ExpenseService) Summary(ctx context.Context, societyID uuid.UUID) ([]community.CategorySummary, error) {
	return s.expenseRepo.SummarizeByCategory(ctx, societyID)
}

// Delete removes one expense
func (s *ExpenseService) Delete(ctx context.Context, societyID, expenseID uuid.UUID) error {
	return s.expenseRepo.Delete(ctx, societyID, expenseID)
}

// DeleteByMonth removes every expense of one calendar month. The label must
// parse as "January 2006"; unlike bill periods it is not free text.
func (s *ExpenseService) DeleteByMonth(ctx context.Context, societyID uuid.UUID, monthLabel string) (int64, error) {
	start, end, err := community.MonthRange(monthLabel)
	if err != nil {
		return 0, err
	}
	deleted, err := s.expenseRepo.DeleteByMonth(ctx, societyID, start, end)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Expense month deleted",
		zap.String("society_id", societyID.String()),
		zap.String("month", monthLabel),
		zap.Int64("count", deleted),
	)
	return deleted, nil
}

// notifyResidents fans an announcement out to every resident on one
// best-effort goroutine.
func (s *ExpenseService) notifyResidents(societyID uuid.UUID, subject, body string) {
	go func() {
		ctx := context.Background()
		residents, err := s.accountRepo.FindResidents(ctx, societyID)
		if err != nil || len(residents) == 0 {
			return
		}
		to := make([]string, len(residents))
		for i, resident := range residents {
			to[i] = resident.Email
		}
		if err := s.notifier.Send(ctx, to, subject, body); err != nil {
			s.logger.Warn("Failed to email residents about expense",
				zap.String("society_id", societyID.String()),
				zap.Error(err),
			)
		}
	}()
}
