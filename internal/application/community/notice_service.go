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

// NoticeService handles society announcements and their read receipts.
// Publishing fans out to residents by email, best-effort.
type NoticeService struct {
	noticeRepo  community.NoticeRepository
	accountRepo identity.AccountRepository
	notifier    email.Notifier
	logger      *zap.Logger
}

// NewNoticeService creates a new notice service
func NewNoticeService(
	noticeRepo community.NoticeRepository,
	accountRepo identity.AccountRepository,
	notifier email.Notifier,
	logger *zap.Logger,
) *NoticeService {
	return &NoticeService{
		noticeRepo:  noticeRepo,
		accountRepo: accountRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Publish creates an announcement and emails the residents
func (s *NoticeService) Publish(ctx context.Context, input AddNoticeInput) (*NoticeInfo, error) {
	notice, err := community.NewNotice(
		input.SocietyID,
		input.Title,
		input.Message,
		community.NoticePriority(input.Priority),
	)
	if err != nil {
		return nil, err
	}
	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		s.logger.Error("Failed to publish notice", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to publish notice")
	}

	subject := fmt.Sprintf("Society notice: %s", notice.Title)
	if notice.IsUrgent() {
		subject = fmt.Sprintf("[URGENT] %s", subject)
	}
	s.notifyResidents(input.SocietyID, subject, notice.Message)

	s.logger.Info("Notice published",
		zap.String("society_id", input.SocietyID.String()),
		zap.String("notice_id", notice.ID.String()),
		zap.String("priority", string(notice.Priority)),
	)
	info := NewNoticeInfo(notice)
	return &info, nil
}

// ListAll returns every announcement with its read receipts
func (s *NoticeService) ListAll(ctx context.Context, societyID uuid.UUID) ([]NoticeInfo, error) {
	notices, err := s.noticeRepo.FindAll(ctx, societyID)
	if err != nil {
		return nil, err
	}
	infos := make([]NoticeInfo, len(notices))
	for i, notice := range notices {
		infos[i] = NewNoticeInfo(notice)
	}
	return infos, nil
}

// MarkRead records that the caller has opened the notice; repeats are no-ops
func (s *NoticeService) MarkRead(ctx context.Context, societyID, noticeID, accountID uuid.UUID) error {
	return s.noticeRepo.MarkRead(ctx, societyID, noticeID, accountID)
}

// Delete removes an announcement and its receipts
func (s *NoticeService) Delete(ctx context.Context, societyID, noticeID uuid.UUID) error {
	return s.noticeRepo.Delete(ctx, societyID, noticeID)
}

func (s *NoticeService) notifyResidents(societyID uuid.UUID, subject, body string) {
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
			s.logger.Warn("Failed to email residents about notice",
				zap.String("society_id", societyID.String()),
				zap.Error(err),
			)
		}
	}()
}
