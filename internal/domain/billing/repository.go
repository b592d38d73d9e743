package billing

import (
	"context"

	"github.com/google/uuid"
)

// BillRepository defines persistence operations for bills. Every
// society-scoped method takes the society ID explicitly.
type BillRepository interface {
	// CreateBatch inserts a period's bills in one transaction. The unique
	// index on (society_id, period, account_id) makes the second of two
	// racing batch generations fail; implementations map that violation to
	// shared.ErrAlreadyExists.
	CreateBatch(ctx context.Context, bills []*Bill) error

	ExistsByPeriod(ctx context.Context, societyID uuid.UUID, period string) (bool, error)
	FindByID(ctx context.Context, societyID, id uuid.UUID) (*Bill, error)
	FindAll(ctx context.Context, societyID uuid.UUID) ([]*Bill, error)
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*Bill, error)

	// MarkPaid performs the Unpaid -> Paid transition as a conditional
	// update (status = 'Unpaid' in the WHERE clause). It returns
	// shared.ErrNotFound when the bill does not exist in the society and a
	// CONCURRENCY/ALREADY_PAID error when the bill was already settled,
	// so the loser of a double-verification race never overwrites the
	// winner's payment ID.
	MarkPaid(ctx context.Context, societyID, id uuid.UUID, paymentID, method string) (*Bill, error)

	Delete(ctx context.Context, societyID, id uuid.UUID) error
	DeleteByPeriod(ctx context.Context, societyID uuid.UUID, period string) (int64, error)
}
