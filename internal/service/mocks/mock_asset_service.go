package mocks

import (
	"context"
	"io"

	"dealerapi/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, typeHint string) (string, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size, typeHint)
	return args.String(0), args.Error(1)
}

func (m *MockAssetService) Fetch(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, key)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Get(1).(storage.ObjectInfo), args.Error(2)
}
