package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ServeIndex 首页
func ServeIndex(fs http.FileSystem) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := fs.Open("/index.html")
		if err != nil {
			c.String(http.StatusNotFound, "页面不存在")
			return
		}
		defer file.Close()

		c.Writer.Header().Set("Content-Type", "text/html; charset=utf-8")
		http.ServeContent(c.Writer, c.Request, "index.html", time.Time{}, file)
	}
}
