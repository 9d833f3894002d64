package common

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// 时间格式常量
const (
	RFC3339MilliZ = "2006-01-02T15:04:05.000Z07:00"
)

// RespData 响应成功，返回原始数据（列表、详情等读接口）
func RespData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespSuccess 响应成功，返回 success 标志和附加字段（写接口）
func RespSuccess(c *gin.Context, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// RespSuccessMsg 响应成功，只返回消息
func RespSuccessMsg(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

// RespError 响应错误，包含错误信息
func RespError(c *gin.Context, statusCode int, msg string, err error) {
	errMsg := msg
	if err != nil {
		errMsg = msg + ": " + err.Error()
	}
	c.JSON(statusCode, ErrorResponse{Error: errMsg})
}

// RespErrorStr 响应错误，只包含错误消息
func RespErrorStr(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, ErrorResponse{Error: msg})
}

// FormatTime 格式化时间为RFC3339MilliZ格式
func FormatTime(t time.Time) string {
	return t.Format(RFC3339MilliZ)
}
