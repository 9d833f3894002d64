package middleware

import (
	"net/http"

	"standards-hub/backend/common"
	huberrors "standards-hub/backend/common/errors"
	"standards-hub/backend/common/i18n"
	"standards-hub/backend/service"

	"github.com/gin-gonic/gin"
)

// AdminTokenHeader carries the opaque admin bearer token. The token is accepted from
// the header only; a query-string fallback would leak tokens into access logs.
const AdminTokenHeader = "x-admin-token"

// AdminAuth guards privileged routes (upload, delete). A token present in the active
// session set grants admin capability, absence denies it.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetString("lang")
		token := c.GetHeader(AdminTokenHeader)
		if !service.IsAdmin(c.Request.Context(), token) {
			common.RespErrorStr(c, http.StatusUnauthorized, i18n.Translate(huberrors.ErrUnauthorized, lang))
			c.Abort()
			return
		}
		c.Next()
	}
}
