package mocks

import (
	"context"

	"contentsapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockContentsRepository struct {
	mock.Mock
}

func (m *MockContentsRepository) Create(ctx context.Context, doc *model.ContentsDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockContentsRepository) Find(ctx context.Context, isbn string) (*model.ContentsDocument, error) {
	args := m.Called(ctx, isbn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentsDocument), args.Error(1)
}

func (m *MockContentsRepository) Update(ctx context.Context, doc *model.ContentsDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}
