package i18n

import (
	"fmt"
	"strings"

	huberrors "standards-hub/backend/common/errors"
)

const DefaultLang = "en"

// translations maps error code -> lang -> message template.
// 阿拉伯语由原平台的管理界面使用，保留作为第二语言。
var translations = map[string]map[string]string{
	huberrors.ErrInternalServer: {
		"en": "internal server error",
		"ar": "خطأ داخلي في الخادم",
	},
	huberrors.ErrInvalidParam: {
		"en": "invalid parameter: %s",
		"ar": "معامل غير صالح: %s",
	},
	huberrors.ErrEmptyID: {
		"en": "id is empty",
		"ar": "المعرف فارغ",
	},
	huberrors.ErrStandardNotFound: {
		"en": "standard not found",
		"ar": "المعيار غير موجود",
	},
	huberrors.ErrFileNotFound: {
		"en": "file not found",
		"ar": "الملف غير موجود",
	},
	huberrors.ErrNoFileUploaded: {
		"en": "no files were uploaded",
		"ar": "لم يتم رفع أي ملفات",
	},
	huberrors.ErrFileTypeNotAllowed: {
		"en": "file type %s is not supported, allowed types: .pdf, .doc, .docx, .txt",
		"ar": "نوع الملف %s غير مدعوم، الأنواع المسموح بها: .pdf, .doc, .docx, .txt",
	},
	huberrors.ErrMissingTitle: {
		"en": "standardId and title are required",
		"ar": "معرف المعيار والعنوان مطلوبان",
	},
	huberrors.ErrUploadFailed: {
		"en": "file upload failed",
		"ar": "فشل رفع الملف",
	},
	huberrors.ErrDeleteFailed: {
		"en": "file deletion failed",
		"ar": "فشل حذف الملف",
	},
	huberrors.ErrInvalidCredentials: {
		"en": "invalid password",
		"ar": "كلمة المرور غير صحيحة",
	},
	huberrors.ErrUnauthorized: {
		"en": "admin token missing or invalid",
		"ar": "رمز المسؤول مفقود أو غير صالح",
	},
}

// Translate resolves an error code to a localized message. Unknown codes fall through
// to the code itself so callers never lose the signal.
func Translate(code string, lang string, args ...interface{}) string {
	lang = normalizeLang(lang)
	langs, ok := translations[code]
	if !ok {
		return code
	}
	msg, ok := langs[lang]
	if !ok {
		msg = langs[DefaultLang]
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if strings.HasPrefix(lang, "ar") {
		return "ar"
	}
	return DefaultLang
}
