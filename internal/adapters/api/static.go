package api

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web
var webFS embed.FS

// setupStaticFiles serves the embedded viewer page and its assets
func (s *HTTPServerAdapter) setupStaticFiles() error {
	index, err := webFS.ReadFile("web/index.html")
	if err != nil {
		return fmt.Errorf("read embedded index: %w", err)
	}
	static, err := fs.Sub(webFS, "web/static")
	if err != nil {
		return fmt.Errorf("open embedded assets: %w", err)
	}

	s.router.StaticFS("/static", http.FS(static))
	s.router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	return nil
}
