package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"standards-hub/backend/common"
	huberrors "standards-hub/backend/common/errors"
	"standards-hub/backend/common/i18n"
	"standards-hub/backend/model"

	"github.com/stretchr/testify/assert"
)

func setupAssetTest(t *testing.T) {
	t.Helper()
	originalSQLitePath := common.SQLitePath
	originalUploadPath := common.UploadPath
	common.SQLitePath = filepath.Join(t.TempDir(), "asset_test.db")
	common.UploadPath = filepath.Join(t.TempDir(), "uploads")

	assert.NoError(t, model.InitDB())
	t.Cleanup(func() {
		_ = model.CloseDB()
		common.SQLitePath = originalSQLitePath
		common.UploadPath = originalUploadPath
	})
}

func TestValidateUploadExtension(t *testing.T) {
	for _, name := range []string{"spec.pdf", "report.DOC", "notes.docx", "readme.txt"} {
		assert.NoError(t, ValidateUploadExtension(name, "en"), name)
	}
	for _, name := range []string{"malware.exe", "archive.zip", "image.png", "noextension"} {
		err := ValidateUploadExtension(name, "en")
		assert.Error(t, err, name)
		assert.True(t, i18n.IsErrorCode(err, huberrors.ErrFileTypeNotAllowed), name)
	}

	// The rejected extension is named in the message.
	err := ValidateUploadExtension("archive.zip", "en")
	assert.Contains(t, err.Error(), ".zip")
}

func TestStorageName(t *testing.T) {
	name := StorageName("spec.pdf")
	assert.True(t, strings.HasSuffix(name, "-spec.pdf"))

	// Path components in the client-supplied name are stripped.
	name = StorageName("../../etc/passwd.txt")
	assert.True(t, strings.HasSuffix(name, "-passwd.txt"))
	assert.NotContains(t, name, "..")
}

func TestDeleteFileRecordRemovesBlobAndRow(t *testing.T) {
	setupAssetTest(t)

	assert.NoError(t, os.MkdirAll(common.UploadPath, 0o755))
	blobPath := filepath.Join(common.UploadPath, "100-doomed.pdf")
	assert.NoError(t, os.WriteFile(blobPath, []byte("doomed bytes"), 0o644))

	file := &model.File{
		StandardId: 1,
		Title:      "Doomed",
		Filename:   "doomed.pdf",
		Filepath:   "100-doomed.pdf",
	}
	assert.NoError(t, model.CreateFile(file))

	assert.NoError(t, DeleteFileRecord(file.Id, "en"))

	_, err := model.GetFileById(file.Id)
	assert.Error(t, err)
	_, err = os.Stat(blobPath)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteFileRecordMissingBlobStillSucceeds(t *testing.T) {
	setupAssetTest(t)

	file := &model.File{
		StandardId: 1,
		Title:      "Ghost",
		Filename:   "ghost.pdf",
		Filepath:   "101-ghost.pdf",
	}
	assert.NoError(t, model.CreateFile(file))

	assert.NoError(t, DeleteFileRecord(file.Id, "en"))
	_, err := model.GetFileById(file.Id)
	assert.Error(t, err)
}

func TestDeleteFileRecordNotFound(t *testing.T) {
	setupAssetTest(t)

	err := DeleteFileRecord(4242, "en")
	assert.Error(t, err)
	assert.True(t, i18n.IsErrorCode(err, huberrors.ErrFileNotFound))
}

func TestResolveDownloadPathGuardsTraversal(t *testing.T) {
	setupAssetTest(t)

	ok := &model.File{Filepath: "102-fine.pdf"}
	path, err := ResolveDownloadPath(ok)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(common.UploadPath, "102-fine.pdf"), path)

	evil := &model.File{Filepath: "../../etc/passwd"}
	_, err = ResolveDownloadPath(evil)
	assert.Error(t, err)
}
