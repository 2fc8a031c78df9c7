package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/brand-bridge/internal/entity"
	"github.com/xavierca1/brand-bridge/internal/infra/integration/brevo"
	"github.com/xavierca1/brand-bridge/internal/logger"
	"github.com/xavierca1/brand-bridge/internal/metrics"
)

const (
	MsgUserSubscribed = "User subscribed"
	MsgContactUpdated = "Contact updated"

	msgSubscriptionFailed = "Subscription failed"
	msgServiceUnavailable = "Subscription service unavailable"
	msgTemporarilyDown    = "Service temporarily unavailable"
	msgNetworkError       = "Network error"
	opSubscribe           = "subscribe"
)

type SubscribeLeadUseCase struct {
	Gateway ContactGateway
	ListID  int64
	Logger  *zap.Logger
	Now     func() time.Time
}

func NewSubscribeLeadUseCase(gateway ContactGateway, listID int64, log *zap.Logger) *SubscribeLeadUseCase {
	return &SubscribeLeadUseCase{
		Gateway: gateway,
		ListID:  listID,
		Logger:  log,
		Now:     time.Now,
	}
}

// Execute validates the email and creates or updates the contact in the CRM.
func (uc *SubscribeLeadUseCase) Execute(ctx context.Context, input SubscribeLeadInput) (*SubscribeLeadOutput, error) {
	log := logger.WithRequest(ctx, uc.Logger)
	email := NormalizeEmail(input.Email)
	log.Info("subscribe request received", logger.Email(email))

	if err := validateSubscribeEmail(email); err != nil {
		log.Info("subscribe rejected", logger.Email(email), zap.String("code", err.Code))
		metrics.RecordLead(opSubscribe, "invalid")
		return nil, err
	}

	source := entity.DefaultSource
	if input.Source != nil {
		source = *input.Source
	}

	lead := entity.Lead{
		Email:      email,
		Source:     source,
		ListID:     uc.ListID,
		CapturedAt: uc.Now(),
	}

	err := uc.Gateway.CreateContact(ctx, brevo.CreateContactInput{
		Email:         lead.Email,
		Attributes:    lead.Attributes(),
		ListIDs:       []int64{lead.ListID},
		UpdateEnabled: true,
	})
	if err == nil {
		log.Info("lead subscribed", logger.Email(email))
		metrics.RecordLead(opSubscribe, "subscribed")
		return &SubscribeLeadOutput{Message: MsgUserSubscribed}, nil
	}

	if apiErr, ok := brevo.AsAPIError(err); ok && apiErr.IsDuplicate() {
		// relies on brevo.CodeDuplicateParameter, see brevo_duplicate_remaps_total
		log.Warn("contact already exists, treated as update", logger.Email(email), zap.String("crm_code", apiErr.Code))
		metrics.RecordDuplicateRemap()
		metrics.RecordLead(opSubscribe, "updated")
		return &SubscribeLeadOutput{Message: MsgContactUpdated, Updated: true}, nil
	}

	classified := classifySubscribeError(err)
	if IsDomainError(classified) {
		log.Warn("crm rejected lead", logger.Email(email), zap.Error(err))
		metrics.RecordLead(opSubscribe, "rejected")
	} else {
		log.Error("crm subscribe failed", logger.Email(email), zap.Error(err))
		metrics.RecordLead(opSubscribe, "failed")
	}
	return nil, classified
}

func validateSubscribeEmail(email string) *DomainError {
	if email == "" {
		return &DomainError{Code: CodeEmailRequired, Message: "Email is required"}
	}
	if !IsValidEmail(email) {
		return &DomainError{Code: CodeInvalidEmail, Message: "Invalid email format"}
	}
	return nil
}

func classifySubscribeError(err error) error {
	if apiErr, ok := brevo.AsAPIError(err); ok {
		if apiErr.StatusCode == http.StatusBadRequest {
			msg := apiErr.Message
			if msg == "" {
				msg = msgSubscriptionFailed
			}
			return &DomainError{Code: CodeCRMRejected, Message: msg}
		}
		return &TechnicalError{Code: CodeCRMUnavailable, Message: msgServiceUnavailable, Err: err}
	}

	switch {
	case errors.Is(err, brevo.ErrTimeout):
		return &TechnicalError{Code: CodeCRMTimeout, Message: msgTemporarilyDown, Err: err}
	case errors.Is(err, brevo.ErrTransport):
		return &TechnicalError{Code: CodeNetworkError, Message: msgNetworkError, Err: err}
	}
	return fmt.Errorf("subscribe lead: %w", err)
}
