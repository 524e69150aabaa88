package lsp

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockClient struct {
	mock.Mock
}

// Ensure MockClient implements Client
var _ Client = (*MockClient)(nil)

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) SendRequest(ctx context.Context, method string, params, result any) error {
	args := m.Called(ctx, method, params, result)
	return args.Error(0)
}
