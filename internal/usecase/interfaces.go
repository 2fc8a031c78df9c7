package usecase

import (
	"context"

	"github.com/xavierca1/brand-bridge/internal/infra/integration/brevo"
)

// ContactGateway is the slice of the CRM the use cases need.
type ContactGateway interface {
	CreateContact(ctx context.Context, input brevo.CreateContactInput) error
	UpdateContact(ctx context.Context, email string, input brevo.UpdateContactInput) error
}

type SubscribeLeadInput struct {
	Email string
	// nil means the caller did not send one
	Source *string
}

type SubscribeLeadOutput struct {
	Message string
	// Updated is set when the contact already existed in the CRM.
	Updated bool
}

type UpdateContactStatusInput struct {
	Email  string
	Status *string
}

type UpdateContactStatusOutput struct {
	Message string
}
