package tmux

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a testify mock of Client.
//
// Example usage:
//
//	client := new(MockClient)
//	client.On("Run", []string{"display", "-p", windowFormat}).Return("2 @7\n", "", nil)
//	tab, err := New(client).ActiveTab(ctx)
//	client.AssertExpectations(t)
type MockClient struct {
	mock.Mock
}

var _ Client = (*MockClient)(nil)

// Run returns the configured stdout, stderr and error. The context is not
// part of the recorded arguments.
func (m *MockClient) Run(_ context.Context, args ...string) (string, string, error) {
	callArgs := m.Called(args)
	return callArgs.String(0), callArgs.String(1), callArgs.Error(2)
}
