// Package web serves the single-page screener UI compiled into the binary.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

// Register mounts GET / (the page shell) and GET /static/* (its script and styles).
func Register(r gin.IRoutes) {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err) // embedded tree is fixed at build time
	}
	page, err := fs.ReadFile(static, "index.html")
	if err != nil {
		panic(err)
	}

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
	r.StaticFS("/static", http.FS(static))
}
