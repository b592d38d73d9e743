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

// ComplaintService handles maintenance tickets. Raising a ticket notifies
// the society admin by email, best-effort.
type ComplaintService struct {
	complaintRepo community.ComplaintRepository
	accountRepo   identity.AccountRepository
	notifier      email.Notifier
	logger        *zap.Logger
}

// NewComplaintService creates a new complaint service
func NewComplaintService(
	complaintRepo community.ComplaintRepository,
	accountRepo identity.AccountRepository,
	notifier email.Notifier,
	logger *zap.Logger,
) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		accountRepo:   accountRepo,
		notifier:      notifier,
		logger:        logger,
	}
}

// Raise creates a pending ticket and notifies the admin
func (s *ComplaintService) Raise(ctx context.Context, input RaiseComplaintInput) (*ComplaintInfo, error) {
	complaint, err := community.NewComplaint(
		input.SocietyID,
		input.AccountID,
		input.Title,
		input.Description,
		input.PhotoURL,
	)
	if err != nil {
		return nil, err
	}
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		s.logger.Error("Failed to create complaint", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create complaint")
	}

	s.notifyAdmin(input.SocietyID, complaint)

	s.logger.Info("Complaint raised",
		zap.String("society_id", input.SocietyID.String()),
		zap.String("complaint_id", complaint.ID.String()),
	)
	info := NewComplaintInfo(complaint)
	return &info, nil
}

// ListAll returns every ticket of the society
func (s *ComplaintService) ListAll(ctx context.Context, societyID uuid.UUID) ([]ComplaintInfo, error) {
	complaints, err := s.complaintRepo.FindAll(ctx, societyID)
	if err != nil {
		return nil, err
	}
	return toComplaintInfos(complaints), nil
}

// ListMine returns the caller's own tickets
func (s *ComplaintService) ListMine(ctx context.Context, societyID, accountID uuid.UUID) ([]ComplaintInfo, error) {
	complaints, err := s.complaintRepo.FindByAccount(ctx, societyID, accountID)
	if err != nil {
		return nil, err
	}
	return toComplaintInfos(complaints), nil
}

// UpdateStatus moves a ticket to a new resolution state
func (s *ComplaintService) UpdateStatus(ctx context.Context, societyID, complaintID uuid.UUID, status string) (*ComplaintInfo, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, societyID, complaintID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if err := complaint.SetStatus(community.ComplaintStatus(status)); err != nil {
		return nil, err
	}
	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		s.logger.Error("Failed to update complaint status", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update complaint")
	}
	info := NewComplaintInfo(complaint)
	return &info, nil
}

// Delete removes a ticket
func (s *ComplaintService) Delete(ctx context.Context, societyID, complaintID uuid.UUID) error {
	return s.complaintRepo.Delete(ctx, societyID, complaintID)
}

// notifyAdmin sends the new-ticket email on its own goroutine; a delivery
// failure never fails the ticket.
func (s *ComplaintService) notifyAdmin(societyID uuid.UUID, complaint *community.Complaint) {
	go func() {
		ctx := context.Background()
		admin, err := s.accountRepo.FindAdmin(ctx, societyID)
		if err != nil {
			s.logger.Warn("No admin to notify about complaint",
				zap.String("society_id", societyID.String()),
				zap.Error(err),
			)
			return
		}
		subject := fmt.Sprintf("New complaint: %s", complaint.Title)
		body := fmt.Sprintf("A new complaint was raised.\r\n\r\nTitle: %s\r\n\r\n%s\r\n",
			complaint.Title, complaint.Description)
		if err := s.notifier.Send(ctx, []string{admin.Email}, subject, body); err != nil {
			s.logger.Warn("Failed to email admin about complaint",
				zap.String("complaint_id", complaint.ID.String()),
				zap.Error(err),
			)
		}
	}()
}

func toComplaintInfos(complaints []*community.Complaint) []ComplaintInfo {
	infos := make([]ComplaintInfo, len(complaints))
	for i, complaint := range complaints {
		infos[i] = NewComplaintInfo(complaint)
	}
	return infos
}
