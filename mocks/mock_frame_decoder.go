package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"trameview/internal/domain"
)

// MockFrameDecoder is a mock implementation of port.FrameDecoder.
type MockFrameDecoder struct {
	mock.Mock
}

func (m *MockFrameDecoder) Decode(ctx context.Context, name, text string) ([]domain.Frame, error) {
	args := m.Called(ctx, name, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Frame), args.Error(1)
}
