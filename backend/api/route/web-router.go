package route

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// setWebRouter serves the static frontend from ./public, the directory the original
// platform shipped its HTML in. API 404s stay JSON.
func setWebRouter(route *gin.Engine) {
	route.Use(static.Serve("/", static.LocalFile("./public", false)))
	route.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API route not found"})
			return
		}
		c.File("./public/index.html")
	})
}
