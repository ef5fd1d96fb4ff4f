package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"dealerapi/internal/assets"
	"dealerapi/internal/storage"
)

// AssetService mints object keys for uploads and streams stored objects back.
type AssetService interface {
	// Upload routes the stream into a folder chosen from typeHint and writes
	// it under a timestamp-prefixed key. Returns the stored key.
	Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, typeHint string) (string, error)

	// Fetch streams the object stored under key.
	Fetch(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error)
}

type assetService struct {
	store storage.Storage
	now   func() time.Time
}

// NewAssetService constructs an AssetService. now is the clock used for key
// prefixes; pass time.Now outside of tests.
func NewAssetService(store storage.Storage, now func() time.Time) AssetService {
	if now == nil {
		now = time.Now
	}
	return &assetService{store: store, now: now}
}

func (s *assetService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, typeHint string) (string, error) {
	if r == nil {
		return "", ErrReaderNil
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := assets.NewKey(assets.FolderForType(typeHint), s.now().UnixMilli(), originalFilename)

	// No read-before-write: keys are freshly minted per upload, so the only
	// possible collision is two same-name uploads in the same millisecond.
	_, err := s.store.Put(ctx, key.String(), r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}
	return key.String(), nil
}

func (s *assetService) Fetch(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	if key == "" {
		return nil, storage.ObjectInfo{}, ErrKeyRequired
	}
	return s.store.Get(ctx, key)
}
