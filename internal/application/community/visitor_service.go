package community

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nivas/backend/internal/domain/community"
	"github.com/nivas/backend/internal/domain/shared"
)

// VisitorService handles the gate log: kiosk entries, resident
// pre-approvals, exits and listings.
type VisitorService struct {
	visitorRepo community.VisitorRepository
	logger      *zap.Logger
}

// NewVisitorService creates a new visitor service
func NewVisitorService(visitorRepo community.VisitorRepository, logger *zap.Logger) *VisitorService {
	return &VisitorService{visitorRepo: visitorRepo, logger: logger}
}

// RecordEntry logs a visitor walking in through the gate. The kiosk is
// unauthenticated and supplies the society explicitly.
func (s *VisitorService) RecordEntry(ctx context.Context, input VisitorEntryInput) (*VisitorInfo, error) {
	addedBy := input.AddedBy
	if addedBy == "" {
		addedBy = "Security"
	}
	visitor, err := community.NewVisitorEntry(
		input.SocietyID,
		input.Name,
		input.Phone,
		input.UnitLabel,
		input.Purpose,
		input.VehicleNumber,
		addedBy,
		input.Duration,
	)
	if err != nil {
		return nil, err
	}
	if err := s.visitorRepo.Create(ctx, visitor); err != nil {
		s.logger.Error("Failed to record visitor entry", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record visitor entry")
	}

	s.logger.Info("Visitor entered",
		zap.String("society_id", input.SocietyID.String()),
		zap.String("visitor_id", visitor.ID.String()),
		zap.String("unit", visitor.UnitLabel),
	)
	info := NewVisitorInfo(visitor, time.Now())
	return &info, nil
}

// PreApprove records a resident's expected visitor
func (s *VisitorService) PreApprove(ctx context.Context, input VisitorEntryInput) (*VisitorInfo, error) {
	visitor, err := community.NewPreApprovedVisitor(
		input.SocietyID,
		input.Name,
		input.Phone,
		input.UnitLabel,
		input.Purpose,
		input.VehicleNumber,
		input.Duration,
	)
	if err != nil {
		return nil, err
	}
	if err := s.visitorRepo.Create(ctx, visitor); err != nil {
		s.logger.Error("Failed to record pre-approval", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record pre-approval")
	}
	info := NewVisitorInfo(visitor, time.Now())
	return &info, nil
}

// MarkExit closes a gate-log entry
func (s *VisitorService) MarkExit(ctx context.Context, societyID, visitorID uuid.UUID) (*VisitorInfo, error) {
	visitor, err := s.visitorRepo.FindByID(ctx, societyID, visitorID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if err := visitor.MarkExited(time.Now()); err != nil {
		return nil, err
	}
	if err := s.visitorRepo.Update(ctx, visitor); err != nil {
		s.logger.Error("Failed to mark visitor exit", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to mark visitor exit")
	}
	info := NewVisitorInfo(visitor, time.Now())
	return &info, nil
}

// ListAll returns the society's whole gate log
func (s *VisitorService) ListAll(ctx context.Context, societyID uuid.UUID) ([]VisitorInfo, error) {
	visitors, err := s.visitorRepo.FindAll(ctx, societyID)
	if err != nil {
		return nil, err
	}
	return toVisitorInfos(visitors), nil
}

// ListForUnit returns entries whose unit label contains the resident's own
// label, so "A-101" also sees entries logged against "Flat A-101".
func (s *VisitorService) ListForUnit(ctx context.Context, societyID uuid.UUID, unitLabel string) ([]VisitorInfo, error) {
	visitors, err := s.visitorRepo.FindAll(ctx, societyID)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(unitLabel))
	matched := make([]*community.Visitor, 0, len(visitors))
	for _, visitor := range visitors {
		if strings.Contains(strings.ToLower(visitor.UnitLabel), needle) {
			matched = append(matched, visitor)
		}
	}
	return toVisitorInfos(matched), nil
}

// Delete removes a gate-log entry
func (s *VisitorService) Delete(ctx context.Context, societyID, visitorID uuid.UUID) error {
	return s.visitorRepo.Delete(ctx, societyID, visitorID)
}

func toVisitorInfos(visitors []*community.Visitor) []VisitorInfo {
	now := time.Now()
	infos := make([]VisitorInfo, len(visitors))
	for i, visitor := range visitors {
		infos[i] = NewVisitorInfo(visitor, now)
	}
	return infos
}
