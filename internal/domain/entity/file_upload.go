package entity

import "time"

// FileType tags an upload and selects its storage bucket.
type FileType string

const (
	// FileTypeProductImage routes to the products/ bucket.
	FileTypeProductImage FileType = "product_image"
	// FileTypePriceList routes to the prices/ bucket.
	FileTypePriceList FileType = "price_list"
	// FileTypeOther is the catch-all bucket, created on demand.
	FileTypeOther FileType = "other"
)

// String returns the string representation of the FileType.
func (t FileType) String() string {
	return string(t)
}

// Bucket returns the storage subdirectory for this file type. Unrecognized
// tags fall back to the catch-all bucket.
func (t FileType) Bucket() string {
	switch t {
	case FileTypeProductImage:
		return "products"
	case FileTypePriceList:
		return "prices"
	default:
		return "other"
	}
}

// FileUpload is the registry row for an uploaded file. Files are append-only:
// never mutated in place and never deleted by the application.
type FileUpload struct {
	ID               uint      `json:"id"`
	Filename         string    `json:"filename"` // Stored name: {timestamp}_{sanitized original}.
	OriginalFilename string    `json:"original_filename"`
	FileType         FileType  `json:"file_type"`
	UploadedBy       uint      `json:"uploaded_by"` // ID of the admin who uploaded the file.
	UploadedAt       time.Time `json:"uploaded_at"`
}
