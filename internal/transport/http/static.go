package http

import (
	stdhttp "net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// staticHandler serves client assets from dir. The root path serves
// index.html; missing files serve the document root's 404.html page. None of
// this touches room state.
func staticHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := path.Clean("/" + c.Request.URL.Path)
		if p == "/" {
			p = "/index.html"
		}

		full := filepath.Join(dir, filepath.FromSlash(p))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			c.File(full)
			return
		}

		serveNotFound(c, dir)
	}
}

func serveNotFound(c *gin.Context, dir string) {
	body, err := os.ReadFile(filepath.Join(dir, "404.html"))
	if err != nil {
		c.String(stdhttp.StatusNotFound, "not found")
		return
	}
	c.Data(stdhttp.StatusNotFound, "text/html; charset=utf-8", body)
}
