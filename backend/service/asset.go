package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"standards-hub/backend/common"
	huberrors "standards-hub/backend/common/errors"
	"standards-hub/backend/common/i18n"
	"standards-hub/backend/model"

	"gorm.io/gorm"
)

// StorageName derives the on-disk name for an upload: <epoch-ms>-<original name>.
// The timestamp prefix keeps concurrent uploads of the same filename from colliding.
func StorageName(originalName string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))
}

// ValidateUploadExtension rejects anything outside the document allow-list, naming
// the unsupported extension in the error.
func ValidateUploadExtension(filename string, lang string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !common.AllowedUploadExtensions[ext] {
		if ext == "" {
			ext = filepath.Base(filename)
		}
		return i18n.New(huberrors.ErrFileTypeNotAllowed, lang, ext)
	}
	return nil
}

// UploadAndRecordFile validates an upload, writes the blob, then records the metadata
// row. The write-then-record order is deliberate: a failed disk write must leave no
// database row, and a failed insert cleans the blob back up.
func UploadAndRecordFile(standardId int, title string, description string, fh *multipart.FileHeader, lang string) (*model.File, error) {
	if err := ValidateUploadExtension(fh.Filename, lang); err != nil {
		return nil, err
	}
	if _, err := model.GetStandardById(standardId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, i18n.New(huberrors.ErrStandardNotFound, lang)
		}
		return nil, err
	}

	storageName := StorageName(fh.Filename)
	if err := common.SaveUploadedFile(fh, storageName); err != nil {
		return nil, i18n.Wrap(err, huberrors.ErrUploadFailed, lang)
	}

	fileRecord := &model.File{
		StandardId:  standardId,
		Title:       title,
		Description: description,
		Filename:    fh.Filename,
		Filepath:    storageName,
		Filesize:    fh.Size,
	}
	if err := model.CreateFile(fileRecord); err != nil {
		diskPath := filepath.Join(common.UploadPath, storageName)
		if cleanupErr := common.DeleteFile(diskPath); cleanupErr != nil {
			common.SysError(fmt.Sprintf("failed to clean up %s after insert failure: %s", diskPath, cleanupErr.Error()))
		}
		return nil, i18n.Wrap(err, huberrors.ErrUploadFailed, lang)
	}

	return fileRecord, nil
}

// DeleteFileRecord removes a file's blob and metadata row. Blob removal is
// best-effort: a missing blob is treated as already deleted and any other
// filesystem error is logged but never blocks removal of the row.
func DeleteFileRecord(fileId int, lang string) error {
	fileRecord, err := model.GetFileById(fileId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return i18n.New(huberrors.ErrFileNotFound, lang)
		}
		return err
	}

	diskPath := filepath.Join(common.UploadPath, fileRecord.Filepath)
	if err := common.DeleteFile(diskPath); err != nil {
		common.SysError(fmt.Sprintf("failed to delete blob %s for file %d: %s", diskPath, fileId, err.Error()))
	}

	if err := model.DeleteFileById(fileId); err != nil {
		return i18n.Wrap(err, huberrors.ErrDeleteFailed, lang)
	}
	return nil
}

// ResolveDownloadPath joins a stored file's path under the upload directory and
// guards against traversal outside it.
func ResolveDownloadPath(fileRecord *model.File) (string, error) {
	fullPath := filepath.Join(common.UploadPath, fileRecord.Filepath)
	if !strings.HasPrefix(filepath.Clean(fullPath), filepath.Clean(common.UploadPath)) {
		return "", errors.New("invalid file path")
	}
	return fullPath, nil
}
