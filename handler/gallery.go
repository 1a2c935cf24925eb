package handler

import (
	"PromptLib/pkg/log"
	"PromptLib/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Gallery struct {
	Gallery service.IGalleryService
}

func (h *Gallery) RegisterRouter(r gin.IRouter) {
	r.GET("/", h.Index)
	r.GET("/prompts/:id", h.Detail)
}

// Index 瀑布流首页，加载失败时渲染空列表
func (h *Gallery) Index(c *gin.Context) {
	category, query := c.Query("category"), c.Query("q")
	if category == "" {
		category = service.CategoryAll
	}

	g, err := h.Gallery.Load(c.Request.Context())
	if err != nil {
		log.L.Error("failed to load gallery", zap.Error(err))
		g = &service.Gallery{}
	}

	c.HTML(http.StatusOK, "gallery.html", newGalleryView(g, category, query))
}

func (h *Gallery) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}
	p, err := h.Gallery.Find(c.Request.Context(), id)
	if err != nil || p == nil {
		if err != nil {
			log.L.Warn("prompt not found", zap.Int64("id", id), zap.Error(err))
		}
		notFound(c)
		return
	}
	c.HTML(http.StatusOK, "detail.html", newDetailView(p))
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{"Title": "Not Found"})
}
