package model

import (
	"time"

	"gorm.io/gorm"
)

// File represents one uploaded document belonging to a standard. Filepath is the
// server-chosen storage name and is never exposed in API responses; the bytes only
// leave the server through the download endpoint.
type File struct {
	Id          int       `json:"id" gorm:"primaryKey"`
	StandardId  int       `json:"standard_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description"`
	Filename    string    `json:"filename" gorm:"size:255;not null"`
	Filepath    string    `json:"-" gorm:"uniqueIndex;size:255;not null"`
	Filesize    int64     `json:"filesize"`
	Downloads   int64     `json:"downloads" gorm:"not null;default:0"`
	UploadedAt  time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

func (f *File) TableName() string {
	return "files"
}

// FileDetail is a file joined with its owning standard's display fields.
type FileDetail struct {
	Id           int       `json:"id"`
	StandardId   int       `json:"standard_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Filename     string    `json:"filename"`
	Filesize     int64     `json:"filesize"`
	Downloads    int64     `json:"downloads"`
	UploadedAt   time.Time `json:"uploaded_at"`
	StandardName string    `json:"standard_name"`
	StandardCode string    `json:"standard_code"`
}

const fileDetailColumns = "files.id, files.standard_id, files.title, files.description, " +
	"files.filename, files.filesize, files.downloads, files.uploaded_at, " +
	"standards.name AS standard_name, standards.code AS standard_code"

// GetFilesByStandard lists a standard's files, most recent upload first.
func GetFilesByStandard(standardId int) ([]*File, error) {
	var files []*File
	err := DB.Where("standard_id = ?", standardId).
		Order("uploaded_at DESC").
		Find(&files).Error
	if files == nil {
		files = []*File{}
	}
	return files, err
}

// GetFileById returns the bare file row or gorm.ErrRecordNotFound.
func GetFileById(id int) (*File, error) {
	var file File
	if err := DB.First(&file, id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// GetFileDetail returns a file joined with its standard, or gorm.ErrRecordNotFound.
func GetFileDetail(id int) (*FileDetail, error) {
	var detail FileDetail
	result := DB.Table("files").
		Select(fileDetailColumns).
		Joins("JOIN standards ON standards.id = files.standard_id").
		Where("files.id = ?", id).
		Limit(1).
		Scan(&detail)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &detail, nil
}

// SearchFiles matches query as a case-insensitive substring of title or description,
// most recent upload first. Callers handle the empty-query case; this always queries.
func SearchFiles(query string) ([]*FileDetail, error) {
	var files []*FileDetail
	pattern := "%" + query + "%"
	err := DB.Table("files").
		Select(fileDetailColumns).
		Joins("JOIN standards ON standards.id = files.standard_id").
		Where("LOWER(files.title) LIKE LOWER(?) OR LOWER(files.description) LIKE LOWER(?)", pattern, pattern).
		Order("files.uploaded_at DESC").
		Scan(&files).Error
	if files == nil {
		files = []*FileDetail{}
	}
	return files, err
}

// IncrementDownloads bumps the download counter by one in a single SQL update, so
// concurrent downloads never lose increments.
func IncrementDownloads(id int) error {
	result := DB.Model(&File{}).Where("id = ?", id).
		UpdateColumn("downloads", gorm.Expr("downloads + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateFile inserts a new file row.
func CreateFile(file *File) error {
	return DB.Create(file).Error
}

// DeleteFileById removes the metadata row.
func DeleteFileById(id int) error {
	return DB.Delete(&File{}, id).Error
}
