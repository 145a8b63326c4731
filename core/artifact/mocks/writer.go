package mocks

import (
	"context"

	"app-reconciler/core/artifact"

	"github.com/stretchr/testify/mock"
)

// Writer is a mock implementation of artifact.Writer
type Writer struct {
	mock.Mock
}

func (m *Writer) Write(ctx context.Context, name string, content []byte, contentType string) (*artifact.Ref, error) {
	args := m.Called(ctx, name, content, contentType)
	if ref, ok := args.Get(0).(*artifact.Ref); ok {
		return ref, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Writer) Prune(ctx context.Context, keep int) (int, error) {
	args := m.Called(ctx, keep)
	return args.Int(0), args.Error(1)
}
