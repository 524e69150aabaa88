package editor

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCommandExecutor struct {
	mock.Mock
}

// Ensure MockCommandExecutor implements CommandExecutor
var _ CommandExecutor = (*MockCommandExecutor)(nil)

func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{}
}

func (m *MockCommandExecutor) ExecuteCommand(ctx context.Context, command string, args ...any) (any, error) {
	callArgs := append([]any{ctx, command}, args...)
	ret := m.Called(callArgs...)
	return ret.Get(0), ret.Error(1)
}
