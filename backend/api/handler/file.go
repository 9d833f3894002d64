package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"standards-hub/backend/common"
	huberrors "standards-hub/backend/common/errors"
	"standards-hub/backend/common/i18n"
	"standards-hub/backend/model"
	"standards-hub/backend/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SearchFiles matches the query as a case-insensitive substring of title or
// description. An empty or missing query yields an empty list, never "all files".
func SearchFiles(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		common.RespData(c, []*model.FileDetail{})
		return
	}
	files, err := model.SearchFiles(query)
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, "search failed", err)
		return
	}
	common.RespData(c, files)
}

// GetFile returns file metadata joined with the owning standard.
func GetFile(c *gin.Context) {
	lang := c.GetString("lang")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		common.RespErrorStr(c, http.StatusBadRequest, i18n.Translate(huberrors.ErrInvalidParam, lang, "id"))
		return
	}
	detail, err := model.GetFileDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespErrorStr(c, http.StatusNotFound, i18n.Translate(huberrors.ErrFileNotFound, lang))
			return
		}
		common.RespError(c, http.StatusInternalServerError, "failed to load file", err)
		return
	}
	common.RespData(c, detail)
}

// DownloadFile streams the stored bytes with the original filename as the suggested
// name and bumps the download counter exactly once.
func DownloadFile(c *gin.Context) {
	lang := c.GetString("lang")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		common.RespErrorStr(c, http.StatusBadRequest, i18n.Translate(huberrors.ErrInvalidParam, lang, "id"))
		return
	}

	fileRecord, err := model.GetFileById(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespErrorStr(c, http.StatusNotFound, i18n.Translate(huberrors.ErrFileNotFound, lang))
			return
		}
		common.RespError(c, http.StatusInternalServerError, "failed to load file", err)
		return
	}

	fullPath, err := service.ResolveDownloadPath(fileRecord)
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, i18n.Translate(huberrors.ErrInvalidParam, lang, "filepath"))
		return
	}

	// Counter first, transfer second; the two are not atomic but the increment
	// happens exactly once per found row.
	if err := model.IncrementDownloads(id); err != nil {
		common.SysError("failed to increment downloads for file " + strconv.Itoa(id) + ": " + err.Error())
	}

	c.FileAttachment(fullPath, fileRecord.Filename)
}

// uploadRequestPayload carries the multipart form fields accompanying the file part.
type uploadRequestPayload struct {
	StandardId  string `form:"standardId" validate:"required"`
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
}

// UploadFile accepts a multipart upload. Admin gating happens in middleware;
// validation failures reject before any storage mutation.
func UploadFile(c *gin.Context) {
	lang := c.GetString("lang")

	fh, err := c.FormFile("file")
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, i18n.Translate(huberrors.ErrNoFileUploaded, lang))
		return
	}

	var payload uploadRequestPayload
	if err := c.ShouldBind(&payload); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, i18n.Translate(huberrors.ErrInvalidParam, lang, err.Error()))
		return
	}
	if err := common.Validate.Struct(payload); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, i18n.Translate(huberrors.ErrMissingTitle, lang))
		return
	}
	standardId, err := strconv.Atoi(payload.StandardId)
	if err != nil || standardId <= 0 {
		common.RespErrorStr(c, http.StatusBadRequest, i18n.Translate(huberrors.ErrInvalidParam, lang, "standardId"))
		return
	}

	fileRecord, err := service.UploadAndRecordFile(standardId, payload.Title, payload.Description, fh, lang)
	if err != nil {
		switch {
		case i18n.IsErrorCode(err, huberrors.ErrFileTypeNotAllowed):
			common.RespErrorStr(c, http.StatusBadRequest, err.Error())
		case i18n.IsErrorCode(err, huberrors.ErrStandardNotFound):
			common.RespErrorStr(c, http.StatusNotFound, err.Error())
		default:
			common.RespError(c, http.StatusInternalServerError, i18n.Translate(huberrors.ErrUploadFailed, lang), err)
		}
		return
	}

	common.RespSuccess(c, gin.H{
		"message": "File uploaded successfully",
		"fileId":  fileRecord.Id,
	})
}

// DeleteFile removes a file's blob and metadata row. Admin only.
func DeleteFile(c *gin.Context) {
	lang := c.GetString("lang")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		common.RespErrorStr(c, http.StatusBadRequest, i18n.Translate(huberrors.ErrInvalidParam, lang, "id"))
		return
	}

	if err := service.DeleteFileRecord(id, lang); err != nil {
		if i18n.IsErrorCode(err, huberrors.ErrFileNotFound) {
			common.RespErrorStr(c, http.StatusNotFound, err.Error())
			return
		}
		common.RespError(c, http.StatusInternalServerError, i18n.Translate(huberrors.ErrDeleteFailed, lang), err)
		return
	}

	common.RespSuccessMsg(c, "File deleted successfully")
}
