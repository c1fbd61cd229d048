package database

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// uploadRepository implements the repository.UploadRepository interface.
type uploadRepository struct {
	db *gorm.DB
}

// NewUploadRepository is the constructor for uploadRepository.
func NewUploadRepository(db *gorm.DB) repository.UploadRepository {
	return &uploadRepository{
		db: db,
	}
}

// FindAll retrieves every upload record, newest first.
func (repo *uploadRepository) FindAll(ctx context.Context) ([]*entity.FileUpload, error) {
	var uploadModels []*model.FileUploadModel

	if err := repo.db.WithContext(ctx).
		Order("uploaded_at DESC").
		Find(&uploadModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find uploads")
	}

	uploads := make([]*entity.FileUpload, 0, len(uploadModels))
	for _, uploadM := range uploadModels {
		uploads = append(uploads, toUploadDomain(uploadM))
	}

	return uploads, nil
}

// Create persists a new upload record.
func (repo *uploadRepository) Create(ctx context.Context, upload *entity.FileUpload) error {
	uploadM := fromUploadDomain(upload)

	if err := repo.db.WithContext(ctx).Create(uploadM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create upload record")
	}

	upload.ID = uploadM.ID
	upload.UploadedAt = uploadM.UploadedAt

	return nil
}

// --- Mapper Functions ---

// toUploadDomain converts a GORM FileUploadModel to a domain FileUpload entity.
func toUploadDomain(data *model.FileUploadModel) *entity.FileUpload {
	if data == nil {
		return nil
	}

	return &entity.FileUpload{
		ID:               data.ID,
		Filename:         data.Filename,
		OriginalFilename: data.OriginalFilename,
		FileType:         entity.FileType(data.FileType),
		UploadedBy:       data.UploadedBy,
		UploadedAt:       data.UploadedAt,
	}
}

// fromUploadDomain converts a domain FileUpload entity to a GORM FileUploadModel.
func fromUploadDomain(data *entity.FileUpload) *model.FileUploadModel {
	if data == nil {
		return nil
	}

	return &model.FileUploadModel{
		ID:               data.ID,
		Filename:         data.Filename,
		OriginalFilename: data.OriginalFilename,
		FileType:         data.FileType.String(),
		UploadedBy:       data.UploadedBy,
		UploadedAt:       data.UploadedAt,
	}
}
