package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nivas/backend/internal/domain/billing"
	"github.com/nivas/backend/internal/domain/identity"
	"github.com/nivas/backend/internal/domain/shared"
)

// BillingService handles the maintenance billing ledger
type BillingService struct {
	billRepo    billing.BillRepository
	accountRepo identity.AccountRepository
	logger      *zap.Logger
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo billing.BillRepository,
	accountRepo identity.AccountRepository,
	logger *zap.Logger,
) *BillingService {
	return &BillingService{
		billRepo:    billRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// GenerateBills creates one unpaid bill per resident for the given period.
// A period that already has bills is rejected; the unique index on
// (society_id, period, account_id) backs the same rule under concurrency.
func (s *BillingService) GenerateBills(ctx context.Context, input GenerateBillsInput) (*GenerateBillsResult, error) {
	if err := billing.ValidatePeriod(input.Period); err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Bill amount must be positive")
	}

	exists, err := s.billRepo.ExistsByPeriod(ctx, input.SocietyID, input.Period)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("PERIOD_EXISTS", "Bills for this period have already been generated")
	}

	residents, err := s.accountRepo.FindResidents(ctx, input.SocietyID)
	if err != nil {
		return nil, err
	}
	if len(residents) == 0 {
		return nil, shared.NewDomainError("NO_RESIDENTS", "Society has no residents to bill")
	}

	bills := make([]*billing.Bill, len(residents))
	for i, resident := range residents {
		bill, err := billing.NewBill(input.SocietyID, resident.ID, input.Period, input.Amount)
		if err != nil {
			return nil, err
		}
		bills[i] = bill
	}

	if err := s.billRepo.CreateBatch(ctx, bills); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("PERIOD_EXISTS", "Bills for this period have already been generated")
		}
		s.logger.Error("Failed to generate bills", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate bills")
	}

	s.logger.Info("Bills generated",
		zap.String("society_id", input.SocietyID.String()),
		zap.String("period", input.Period),
		zap.Int("count", len(bills)),
	)

	return &GenerateBillsResult{Period: input.Period, Created: len(bills)}, nil
}

// ListBills returns the whole ledger grouped by period in first-seen order
func (s *BillingService) ListBills(ctx context.Context, societyID uuid.UUID) ([]PeriodGroup, error) {
	bills, err := s.billRepo.FindAll(ctx, societyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order, groups := billing.GroupByPeriod(bills)
	result := make([]PeriodGroup, len(order))
	for i, period := range order {
		infos := make([]BillInfo, len(groups[period]))
		for j, bill := range groups[period] {
			infos[j] = NewBillInfo(bill, now)
		}
		result[i] = PeriodGroup{Period: period, Bills: infos}
	}
	return result, nil
}

// ListMyBills returns one resident's bills
func (s *BillingService) ListMyBills(ctx context.Context, accountID uuid.UUID) ([]BillInfo, error) {
	bills, err := s.billRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	infos := make([]BillInfo, len(bills))
	for i, bill := range bills {
		infos[i] = NewBillInfo(bill, now)
	}
	return infos, nil
}

// DeleteBill removes a single bill
func (s *BillingService) DeleteBill(ctx context.Context, societyID, id uuid.UUID) error {
	if err := s.billRepo.Delete(ctx, societyID, id); err != nil {
		return err
	}
	s.logger.Info("Bill deleted",
		zap.String("society_id", societyID.String()),
		zap.String("bill_id", id.String()),
	)
	return nil
}

// DeleteBillsByPeriod removes every bill of one period and reports the count
func (s *BillingService) DeleteBillsByPeriod(ctx context.Context, societyID uuid.UUID, period string) (int64, error) {
	deleted, err := s.billRepo.DeleteByPeriod(ctx, societyID, period)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Billing period deleted",
		zap.String("society_id", societyID.String()),
		zap.String("period", period),
		zap.Int64("count", deleted),
	)
	return deleted, nil
}
