package handler

import (
	"errors"
	"net/http"
	"strconv"

	"standards-hub/backend/common"
	huberrors "standards-hub/backend/common/errors"
	"standards-hub/backend/common/i18n"
	"standards-hub/backend/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllStandards lists every standard.
func GetAllStandards(c *gin.Context) {
	standards, err := model.GetAllStandards()
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, "failed to list standards", err)
		return
	}
	common.RespData(c, standards)
}

// GetStandardFiles lists a standard's files, most recent first.
func GetStandardFiles(c *gin.Context) {
	lang := c.GetString("lang")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		common.RespErrorStr(c, http.StatusBadRequest, i18n.Translate(huberrors.ErrInvalidParam, lang, "id"))
		return
	}

	if _, err := model.GetStandardById(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespErrorStr(c, http.StatusNotFound, i18n.Translate(huberrors.ErrStandardNotFound, lang))
			return
		}
		common.RespError(c, http.StatusInternalServerError, "failed to load standard", err)
		return
	}

	files, err := model.GetFilesByStandard(id)
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, "failed to list files", err)
		return
	}
	common.RespData(c, files)
}

// GetStatistics reports per-standard file count and total downloads. Standards
// without files report zeroes.
func GetStatistics(c *gin.Context) {
	stats, err := model.GetStatistics()
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, "failed to compute statistics", err)
		return
	}
	common.RespData(c, stats)
}
