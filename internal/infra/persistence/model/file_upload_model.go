package model

import "time"

// FileUploadModel mirrors the 'file_uploads' table.
type FileUploadModel struct {
	ID               uint      `gorm:"primaryKey"`
	Filename         string    `gorm:"type:varchar(200);not null"`
	OriginalFilename string    `gorm:"type:varchar(200);not null"`
	FileType         string    `gorm:"type:varchar(50);not null"`
	UploadedBy       uint      `gorm:"not null"`
	UploadedAt       time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (FileUploadModel) TableName() string {
	return "file_uploads"
}
