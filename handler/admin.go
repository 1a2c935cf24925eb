package handler

import (
	"PromptLib/middleware"
	"PromptLib/models"
	"PromptLib/pkg/context"
	"PromptLib/pkg/log"
	"PromptLib/service"
	"PromptLib/types"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	maxImageSize int64 = 10 << 20 // 10MB

	statusSaved     = "saved"
	statusFailed    = "failed"
	statusTagFailed = "tag_failed"
)

var adminAlerts = map[string]string{
	statusSaved:     "Prompt saved successfully!",
	statusFailed:    "Failed to save prompt.",
	statusTagFailed: "Failed to add tag.",
}

type Admin struct {
	AuthService   service.IAuthService
	PromptService service.IPromptService
	TagService    service.ITagService
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	admin := r.Group("/admin", middleware.SessionRequired(h.AuthService))
	admin.GET("", h.Index)
	admin.POST("/prompts", h.CreatePrompt)
	admin.POST("/tags", h.CreateTag)
}

type adminView struct {
	Title                 string
	Success               string
	Error                 string
	Selected              string
	Tags                  []*models.Tag
	GenerationTypes       []types.GenerationType
	DefaultGenerationType types.GenerationType
}

func (h *Admin) Index(c *gin.Context) {
	tags, err := h.TagService.ListTags(c.Request.Context())
	if err != nil {
		log.L.Error("failed to load tags", zap.Error(err))
	}

	v := &adminView{
		Title:                 "Admin",
		Selected:              c.Query("selected"),
		Tags:                  tags,
		GenerationTypes:       []types.GenerationType{types.TextToImage, types.ImageToImage},
		DefaultGenerationType: types.TextToImage,
	}
	switch status := c.Query("status"); status {
	case statusSaved:
		v.Success = adminAlerts[status]
	case statusFailed, statusTagFailed:
		v.Error = adminAlerts[status]
	}
	c.HTML(http.StatusOK, "admin.html", v)
}

// CreatePrompt 任何一步失败都只给出统一的失败提示
func (h *Admin) CreatePrompt(c *gin.Context) {
	ctx := c.Request.Context()

	var prompt *models.Prompt
	in, err := h.parseForm(c)
	if err == nil {
		prompt, err = h.PromptService.CreatePrompt(ctx, in)
	}
	if err != nil {
		log.L.Error("failed to save prompt", zap.String("session", context.GetSessionID(c)), zap.Error(err))
		c.Redirect(http.StatusSeeOther, "/admin?status="+statusFailed)
		return
	}
	log.L.Info("prompt saved", zap.Int64("id", prompt.ID), zap.String("session", context.GetSessionID(c)))
	c.Redirect(http.StatusSeeOther, "/admin?status="+statusSaved)
}

func (h *Admin) CreateTag(c *gin.Context) {
	tag, err := h.TagService.AddTag(c.Request.Context(), c.PostForm("name"))
	if err != nil {
		log.L.Warn("failed to add tag", zap.Error(err))
		c.Redirect(http.StatusSeeOther, "/admin?status="+statusTagFailed)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin?selected="+url.QueryEscape(tag.Name))
}

func (h *Admin) parseForm(c *gin.Context) (*types.CreatePromptInput, error) {
	var req types.CreatePromptRequest
	if err := c.ShouldBind(&req); err != nil {
		return nil, err
	}

	in := &types.CreatePromptInput{
		Text:           req.Text,
		Tags:           req.Tags,
		NewTag:         req.NewTag,
		GenerationType: types.GenerationType(req.GenerationType),
	}

	header, err := c.FormFile("image")
	if err == nil {
		img, err := readImage(header)
		if err != nil {
			return nil, err
		}
		in.Image = img
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	return in, nil
}

func readImage(header *multipart.FileHeader) (*types.ImageUpload, error) {
	if header.Size > maxImageSize {
		return nil, fmt.Errorf("image too large: %d bytes", header.Size)
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxImageSize {
		return nil, fmt.Errorf("image too large")
	}
	return &types.ImageUpload{Filename: header.Filename, Data: data}, nil
}
