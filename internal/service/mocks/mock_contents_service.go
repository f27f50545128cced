package mocks

import (
	"context"

	"contentsapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockContentsService struct {
	mock.Mock
}

func (m *MockContentsService) Put(ctx context.Context, raw []byte) (*model.ContentsDocument, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentsDocument), args.Error(1)
}

func (m *MockContentsService) Get(ctx context.Context, isbn string) (*model.ContentsDocument, error) {
	args := m.Called(ctx, isbn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentsDocument), args.Error(1)
}
