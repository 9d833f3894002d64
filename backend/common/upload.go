package common

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// SaveUploadedFile writes a multipart upload under UploadPath with the given storage
// name, creating the directory on demand. Write failures leave no partial file behind.
func SaveUploadedFile(fh *multipart.FileHeader, storageName string) error {
	if err := os.MkdirAll(UploadPath, 0o755); err != nil {
		return fmt.Errorf("create upload directory %s: %w", UploadPath, err)
	}

	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open uploaded file %s: %w", fh.Filename, err)
	}
	defer src.Close()

	dstPath := filepath.Join(UploadPath, storageName)
	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create file %s: %w", dstPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dstPath)
		return fmt.Errorf("write file %s: %w", dstPath, err)
	}
	return dst.Close()
}

// DeleteFile removes a stored blob. A missing file counts as already deleted.
func DeleteFile(path string) error {
	err := os.Remove(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
