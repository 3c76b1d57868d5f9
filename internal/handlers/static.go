package handlers

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type StaticHandler struct {
	StaticDir string
}

func NewStaticHandler(staticDir string) *StaticHandler {
	return &StaticHandler{StaticDir: staticDir}
}

func (h *StaticHandler) RobotsTxt(c *gin.Context) {
	c.File(filepath.Join(h.StaticDir, "robots.txt"))
}
