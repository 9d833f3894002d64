package handler

import (
	"net/http"

	"standards-hub/backend/api/middleware"
	"standards-hub/backend/common"
	huberrors "standards-hub/backend/common/errors"
	"standards-hub/backend/common/i18n"
	"standards-hub/backend/service"

	"github.com/gin-gonic/gin"
)

type adminLoginPayload struct {
	Password string `json:"password" validate:"required"`
}

// AdminLogin exchanges the shared admin password for an opaque session token.
func AdminLogin(c *gin.Context) {
	lang := c.GetString("lang")

	var payload adminLoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, i18n.Translate(huberrors.ErrInvalidParam, lang, "password"))
		return
	}
	if err := common.Validate.Struct(payload); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, i18n.Translate(huberrors.ErrInvalidParam, lang, "password"))
		return
	}

	token, err := service.AdminLogin(c.Request.Context(), payload.Password, lang)
	if err != nil {
		if i18n.IsErrorCode(err, huberrors.ErrInvalidCredentials) {
			common.RespErrorStr(c, http.StatusUnauthorized, err.Error())
			return
		}
		common.RespError(c, http.StatusInternalServerError, "login failed", err)
		return
	}

	common.RespSuccess(c, gin.H{"token": token})
}

// AdminLogout invalidates the presented token. Idempotent: unknown tokens succeed.
func AdminLogout(c *gin.Context) {
	token := c.GetHeader(middleware.AdminTokenHeader)
	if err := service.AdminLogout(c.Request.Context(), token); err != nil {
		common.RespError(c, http.StatusInternalServerError, "logout failed", err)
		return
	}
	common.RespSuccessMsg(c, "logged out")
}

// AdminStatus reports whether the presented token currently grants admin capability.
func AdminStatus(c *gin.Context) {
	token := c.GetHeader(middleware.AdminTokenHeader)
	common.RespData(c, gin.H{
		"isAdmin": service.IsAdmin(c.Request.Context(), token),
	})
}
