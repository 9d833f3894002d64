package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// LangMiddleware 注入 lang 到 context
func LangMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = "en"
		} else {
			// 只取第一个语言
			lang = strings.Split(lang, ",")[0]
		}
		c.Set("lang", lang)
		c.Next()
	}
}
