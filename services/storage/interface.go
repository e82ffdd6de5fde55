package storage

import "context"

// StorageService defines the interface for hosted image operations.
type StorageService interface {
	// UploadImage uploads the file at localFilePath into folder and returns
	// the hosted, publicly served URL.
	UploadImage(ctx context.Context, localFilePath, folder string) (string, error)
	// DeleteImage removes a previously uploaded asset by its public ID.
	DeleteImage(ctx context.Context, publicID string) error
}
