package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/brand-bridge/internal/infra/integration/brevo"
)

type MockContactGateway struct {
	mock.Mock
}

func (m *MockContactGateway) CreateContact(ctx context.Context, input brevo.CreateContactInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockContactGateway) UpdateContact(ctx context.Context, email string, input brevo.UpdateContactInput) error {
	args := m.Called(ctx, email, input)
	return args.Error(0)
}
