package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of netskope.Client
type Client struct {
	mock.Mock
}

func (m *Client) FetchDocument(ctx context.Context) (any, error) {
	args := m.Called(ctx)
	return args.Get(0), args.Error(1)
}

func (m *Client) FetchAllPages(ctx context.Context) ([]any, error) {
	args := m.Called(ctx)
	if pages, ok := args.Get(0).([]any); ok {
		return pages, args.Error(1)
	}
	return nil, args.Error(1)
}
