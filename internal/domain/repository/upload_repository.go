package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// UploadRepository defines the operations for the upload registry.
// Rows are append-only: uploads are never deleted in-app.
type UploadRepository interface {
	// FindAll retrieves every upload record, newest first.
	FindAll(ctx context.Context) ([]*entity.FileUpload, error)

	// Create persists a new upload record.
	Create(ctx context.Context, upload *entity.FileUpload) error
}
