package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/brand-bridge/internal/entity"
	"github.com/xavierca1/brand-bridge/internal/infra/integration/brevo"
	"github.com/xavierca1/brand-bridge/internal/logger"
	"github.com/xavierca1/brand-bridge/internal/metrics"
)

const (
	MsgStatusUpdated = "Contact status updated"

	opUpdateStatus = "update_status"
)

type UpdateContactStatusUseCase struct {
	Gateway ContactGateway
	Logger  *zap.Logger
	Now     func() time.Time
}

func NewUpdateContactStatusUseCase(gateway ContactGateway, log *zap.Logger) *UpdateContactStatusUseCase {
	return &UpdateContactStatusUseCase{
		Gateway: gateway,
		Logger:  log,
		Now:     time.Now,
	}
}

// Execute sets STATUS and LAST_ACTION_DATE on an existing contact. Transport
// failures are not classified: callers answer them with a generic error.
func (uc *UpdateContactStatusUseCase) Execute(ctx context.Context, input UpdateContactStatusInput) (*UpdateContactStatusOutput, error) {
	log := logger.WithRequest(ctx, uc.Logger)
	email := NormalizeEmail(input.Email)

	if email == "" || !IsValidEmail(email) {
		metrics.RecordLead(opUpdateStatus, "invalid")
		return nil, &DomainError{Code: CodeInvalidEmail, Message: "Valid email required"}
	}

	status := entity.StatusHotLead
	if input.Status != nil {
		status = *input.Status
	}

	update := entity.StatusUpdate{
		Email:    email,
		Status:   status,
		ActionAt: uc.Now(),
	}

	err := uc.Gateway.UpdateContact(ctx, update.Email, brevo.UpdateContactInput{
		Attributes: update.Attributes(),
	})
	if err == nil {
		log.Info("contact status updated", logger.Email(email), zap.String("status", status))
		metrics.RecordLead(opUpdateStatus, "updated")
		return &UpdateContactStatusOutput{Message: MsgStatusUpdated}, nil
	}

	if apiErr, ok := brevo.AsAPIError(err); ok {
		log.Warn("crm refused status update", logger.Email(email), zap.Int("crm_status", apiErr.StatusCode), zap.String("crm_code", apiErr.Code))
		metrics.RecordLead(opUpdateStatus, "rejected")
		return nil, &DomainError{Code: CodeUpdateFailed, Message: "Failed to update contact"}
	}

	metrics.RecordLead(opUpdateStatus, "failed")
	return nil, fmt.Errorf("update contact status: %w", err)
}
