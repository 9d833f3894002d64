package errors

// 通用错误码
const (
	ErrInternalServer = "ERR_INTERNAL_SERVER"
	ErrInvalidParam   = "ERR_INVALID_PARAM"
)

// 目录与文件错误码
const (
	ErrEmptyID            = "ERR_EMPTY_ID"
	ErrStandardNotFound   = "ERR_STANDARD_NOT_FOUND"
	ErrFileNotFound       = "ERR_FILE_NOT_FOUND"
	ErrNoFileUploaded     = "ERR_NO_FILE_UPLOADED"
	ErrFileTypeNotAllowed = "ERR_FILE_TYPE_NOT_ALLOWED"
	ErrMissingTitle       = "ERR_MISSING_TITLE"
	ErrUploadFailed       = "ERR_UPLOAD_FAILED"
	ErrDeleteFailed       = "ERR_DELETE_FAILED"
)

// 管理会话错误码
const (
	ErrInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrUnauthorized       = "ERR_UNAUTHORIZED"
)
