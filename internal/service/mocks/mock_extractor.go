package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pdfmeta/internal/model"
)

type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(ctx context.Context, data []byte, filename string, normalizeDates bool) (*model.ExtractionResult, error) {
	args := m.Called(ctx, data, filename, normalizeDates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExtractionResult), args.Error(1)
}
