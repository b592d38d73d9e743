package billing

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/nivas/backend/internal/domain/billing"
	"github.com/nivas/backend/internal/domain/shared"
	"github.com/nivas/backend/internal/infrastructure/payment"
)

// PaymentService handles the checkout-order and verification flow for bills.
// It never trusts the client's word that a payment happened; the gateway
// signature is the only proof, and settling the bill is a conditional
// Unpaid -> Paid update in the repository.
type PaymentService struct {
	billRepo billing.BillRepository
	gateway  payment.Gateway
	logger   *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	billRepo billing.BillRepository,
	gateway payment.Gateway,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		billRepo: billRepo,
		gateway:  gateway,
		logger:   logger,
	}
}

// CreateOrder opens a gateway checkout order for an unpaid bill. No local
// state changes; the order only exists at the gateway until verification.
func (s *PaymentService) CreateOrder(ctx context.Context, input CreateOrderInput) (*payment.Order, error) {
	bill, err := s.billRepo.FindByID(ctx, input.SocietyID, input.BillID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if bill.AccountID != input.AccountID {
		// another resident's bill reads as absent, same as cross-tenant
		return nil, shared.ErrNotFound
	}
	if bill.IsPaid() {
		return nil, shared.NewDomainError("ALREADY_PAID", "Bill has already been paid")
	}

	order, err := s.gateway.CreateOrder(ctx, bill.Amount, bill.ID.String())
	if err != nil {
		s.logger.Error("Failed to create checkout order",
			zap.String("bill_id", bill.ID.String()),
			zap.Error(err),
		)
		return nil, shared.NewDomainError("GATEWAY_ERROR", "Failed to create payment order")
	}

	s.logger.Info("Checkout order created",
		zap.String("bill_id", bill.ID.String()),
		zap.String("order_id", order.OrderID),
		zap.Bool("mock", order.Mock),
	)
	return order, nil
}

// VerifyPayment checks the gateway signature and settles the bill. The
// second of two racing verifications loses with ALREADY_PAID and never
// overwrites the winner's payment ID.
func (s *PaymentService) VerifyPayment(ctx context.Context, input VerifyPaymentInput) (*BillInfo, error) {
	if _, err := s.billRepo.FindByID(ctx, input.SocietyID, input.BillID); err != nil {
		return nil, shared.ErrNotFound
	}

	if err := s.gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature); err != nil {
		if errors.Is(err, payment.ErrSignatureMismatch) {
			s.logger.Warn("Payment signature mismatch",
				zap.String("bill_id", input.BillID.String()),
				zap.String("order_id", input.OrderID),
			)
			return nil, shared.NewDomainError("SIGNATURE_MISMATCH", "Payment signature verification failed")
		}
		return nil, shared.NewDomainError("GATEWAY_ERROR", "Payment verification failed")
	}

	bill, err := s.billRepo.MarkPaid(ctx, input.SocietyID, input.BillID, input.PaymentID, "razorpay")
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "ALREADY_PAID" {
			return nil, err
		}
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to settle bill",
			zap.String("bill_id", input.BillID.String()),
			zap.Error(err),
		)
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to settle bill")
	}

	s.logger.Info("Bill settled",
		zap.String("bill_id", bill.ID.String()),
		zap.String("payment_id", input.PaymentID),
	)

	info := NewBillInfo(bill, time.Now())
	return &info, nil
}
