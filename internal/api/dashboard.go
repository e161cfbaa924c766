package api

import (
	"embed"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// Embedded dashboard assets: a single static page that polls the
// management API. Served at / when the API is enabled.
//
//go:embed dist/*
var embeddedDashboard embed.FS

func dashboardFS() static.ServeFileSystem {
	fs := static.EmbedFolder(embeddedDashboard, "dist")
	if fs == nil {
		panic("failed to get embedded dashboard filesystem")
	}
	return fs
}

// MountDashboard serves the embedded status page at / and falls back to
// index.html for any non-API route.
func MountDashboard(r *gin.Engine, logger *slog.Logger) {
	distFS := dashboardFS()
	r.Use(static.Serve("/", distFS))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.RequestURI, "/api") || strings.HasPrefix(c.Request.RequestURI, "/swagger") {
			return
		}
		index, err := distFS.Open("index.html")
		if err != nil {
			if logger != nil {
				logger.Error("failed to open index.html", "error", err)
			}
			return
		}
		defer index.Close()
		stat, _ := index.Stat()
		http.ServeContent(c.Writer, c.Request, "index.html", stat.ModTime(), index)
	})
}
