package i18n

import (
	"errors"
	"testing"

	huberrors "standards-hub/backend/common/errors"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.Equal(t, "file not found", Translate(huberrors.ErrFileNotFound, "en"))
	assert.Equal(t, "الملف غير موجود", Translate(huberrors.ErrFileNotFound, "ar"))

	// Regional variants map onto the base language.
	assert.Equal(t, "الملف غير موجود", Translate(huberrors.ErrFileNotFound, "ar-EG"))

	// Unknown languages fall back to English.
	assert.Equal(t, "file not found", Translate(huberrors.ErrFileNotFound, "fr"))

	// Unknown codes pass through.
	assert.Equal(t, "ERR_NO_SUCH_CODE", Translate("ERR_NO_SUCH_CODE", "en"))
}

func TestTranslateWithArgs(t *testing.T) {
	msg := Translate(huberrors.ErrFileTypeNotAllowed, "en", ".zip")
	assert.Contains(t, msg, ".zip")
	assert.Contains(t, msg, ".pdf")
}

func TestI18nError(t *testing.T) {
	err := New(huberrors.ErrInvalidCredentials, "en")
	assert.Equal(t, "invalid password", err.Error())
	assert.Equal(t, huberrors.ErrInvalidCredentials, err.ErrorCode())
	assert.True(t, IsErrorCode(err, huberrors.ErrInvalidCredentials))
	assert.False(t, IsErrorCode(err, huberrors.ErrFileNotFound))
	assert.False(t, IsErrorCode(errors.New("plain"), huberrors.ErrInvalidCredentials))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(cause, huberrors.ErrUploadFailed, "en")
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsErrorCode(err, huberrors.ErrUploadFailed))
}
