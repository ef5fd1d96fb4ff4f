package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"dealerapi/internal/storage"
	storeMocks "dealerapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func fixedClock(unixMillis int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(unixMillis) }
}

func TestAssetService_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		originalFilename string
		contentType      string
		size             int64
		typeHint         string
		setupMocks       func(mStore *storeMocks.MockStorage) io.Reader
		wantKey          string
		wantErr          error
		wantErrMsg       string
	}{
		{
			name:             "default routes into products",
			originalFilename: "car.jpg",
			contentType:      "image/jpeg",
			size:             11,
			typeHint:         "",
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				r := strings.NewReader("hello world")
				mStore.On("Put", ctx, "products/1700000000000-car.jpg", r, storage.PutObjectOptions{
					Size:        11,
					ContentType: "image/jpeg",
					Metadata:    map[string]string{"original-filename": "car.jpg"},
				}).Return(storage.ObjectInfo{
					Key:         "products/1700000000000-car.jpg",
					Size:        11,
					ContentType: "image/jpeg",
				}, nil)
				return r
			},
			wantKey: "products/1700000000000-car.jpg",
		},
		{
			name:             "poster hint routes into posters",
			originalFilename: "sale.png",
			contentType:      "image/png",
			size:             4,
			typeHint:         "poster",
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				r := strings.NewReader("data")
				mStore.On("Put", ctx, "posters/1700000000000-sale.png", r, mock.Anything).
					Return(storage.ObjectInfo{Key: "posters/1700000000000-sale.png"}, nil)
				return r
			},
			wantKey: "posters/1700000000000-sale.png",
		},
		{
			name:             "unknown hint falls back to products",
			originalFilename: "pic.jpg",
			contentType:      "image/jpeg",
			size:             4,
			typeHint:         "banner",
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				r := strings.NewReader("data")
				mStore.On("Put", ctx, "products/1700000000000-pic.jpg", r, mock.Anything).
					Return(storage.ObjectInfo{Key: "products/1700000000000-pic.jpg"}, nil)
				return r
			},
			wantKey: "products/1700000000000-pic.jpg",
		},
		{
			name:             "empty content type defaults to octet-stream",
			originalFilename: "blob",
			size:             4,
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				r := strings.NewReader("data")
				mStore.On("Put", ctx, mock.Anything, r, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
					return opt.ContentType == "application/octet-stream"
				})).Return(storage.ObjectInfo{}, nil)
				return r
			},
			wantKey: "products/1700000000000-blob",
		},
		{
			name:             "validation error - nil reader",
			originalFilename: "car.jpg",
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name:             "storage error",
			originalFilename: "car.jpg",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
				return r
			},
			wantErrMsg: "upload to storage: storage fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			svc := NewAssetService(mStore, fixedClock(1700000000000))

			r := tt.setupMocks(mStore)

			key, err := svc.Upload(ctx, r, tt.originalFilename, tt.contentType, tt.size, tt.typeHint)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantKey, key)
			}

			mStore.AssertExpectations(t)
		})
	}
}

func TestAssetService_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := NewAssetService(mStore, nil)

		body := io.NopCloser(strings.NewReader("bytes"))
		mStore.On("Get", ctx, "products/1-car.jpg").
			Return(body, storage.ObjectInfo{Key: "products/1-car.jpg", ContentType: "image/jpeg"}, nil)

		rc, info, err := svc.Fetch(ctx, "products/1-car.jpg")
		assert.NoError(t, err)
		assert.Equal(t, "image/jpeg", info.ContentType)
		assert.NotNil(t, rc)
		mStore.AssertExpectations(t)
	})

	t.Run("empty key", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := NewAssetService(mStore, nil)

		_, _, err := svc.Fetch(ctx, "")
		assert.ErrorIs(t, err, ErrKeyRequired)
		mStore.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("storage miss propagates", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := NewAssetService(mStore, nil)

		mStore.On("Get", ctx, "products/1-gone.jpg").
			Return(nil, storage.ObjectInfo{}, storage.ErrObjectNotFound)

		_, _, err := svc.Fetch(ctx, "products/1-gone.jpg")
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
		mStore.AssertExpectations(t)
	})
}
