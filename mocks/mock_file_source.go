package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"trameview/internal/port"
)

// MockFileSource is a mock implementation of port.FileSource.
type MockFileSource struct {
	mock.Mock
}

func (m *MockFileSource) Fetch(ctx context.Context) (*port.SourceFile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.SourceFile), args.Error(1)
}
