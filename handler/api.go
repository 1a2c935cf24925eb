package handler

import (
	"PromptLib/dao"
	"PromptLib/middleware"
	"PromptLib/pkg/context"
	"PromptLib/pkg/log"
	"PromptLib/pkg/response"
	"PromptLib/service"
	"PromptLib/types"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Api JSON 接口，写操作需要会话（cookie 或 Bearer）
type Api struct {
	AuthService    service.IAuthService
	GalleryService service.IGalleryService
	PromptService  service.IPromptService
	TagService     service.ITagService
}

func (h *Api) RegisterRouter(r gin.IRouter) {
	authorize := middleware.APISessionRequired(h.AuthService)

	prompts := r.Group("/api/v1/prompts")
	prompts.GET("", context.Wrap(h.ListPrompts))
	prompts.POST("", authorize, context.Wrap(h.CreatePrompt))

	tags := r.Group("/api/v1/tags")
	tags.GET("", context.Wrap(h.ListTags))
	tags.POST("", authorize, context.Wrap(h.CreateTag))
}

func (h *Api) ListPrompts(c *gin.Context) error {
	var req types.ListPromptsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.WrapError(http.StatusBadRequest, err)
	}
	g, err := h.GalleryService.Load(c.Request.Context())
	if err != nil {
		return apiError(err)
	}
	list := service.FilterPrompts(g.Prompts, req.Category, req.Query)
	response.Success(c, gin.H{
		"total":   len(list),
		"prompts": list,
	})
	return nil
}

func (h *Api) ListTags(c *gin.Context) error {
	tags, err := h.TagService.ListTags(c.Request.Context())
	if err != nil {
		return apiError(err)
	}
	response.Success(c, tags)
	return nil
}

func (h *Api) CreatePrompt(c *gin.Context) error {
	var req types.CreatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.WrapError(http.StatusBadRequest, err)
	}

	in := &types.CreatePromptInput{
		Text:           req.Text,
		Tags:           req.Tags,
		NewTag:         req.NewTag,
		GenerationType: types.GenerationType(req.GenerationType),
	}
	if req.ImageBase64 != "" {
		data, err := decodeImageBase64(req.ImageBase64)
		if err != nil {
			return response.NewError(http.StatusBadRequest, "image_base64 解码失败")
		}
		in.Image = &types.ImageUpload{Data: data}
	}

	prompt, err := h.PromptService.CreatePrompt(c.Request.Context(), in)
	if err != nil {
		return apiError(err)
	}
	response.Success(c, prompt)
	return nil
}

func (h *Api) CreateTag(c *gin.Context) error {
	var req types.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.WrapError(http.StatusBadRequest, err)
	}
	tag, err := h.TagService.AddTag(c.Request.Context(), req.Name)
	if err != nil {
		return apiError(err)
	}
	response.Success(c, tag)
	return nil
}

// decodeImageBase64 支持 data URI 或裸 base64
func decodeImageBase64(s string) ([]byte, error) {
	if i := strings.Index(s, ","); strings.HasPrefix(s, "data:") && i >= 0 {
		s = s[i+1:]
	}
	return base64.StdEncoding.DecodeString(s)
}

func apiError(err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyEntry),
		errors.Is(err, service.ErrImageDecode),
		errors.Is(err, service.ErrEmptyTagName),
		errors.Is(err, types.ErrUnknownGenerationType):
		return response.WrapError(http.StatusBadRequest, err)
	case errors.Is(err, dao.ErrBackendUnavailable),
		errors.Is(err, service.ErrStorageUnavailable):
		log.L.Error("backend unavailable", zap.Error(err))
		return response.WrapError(http.StatusServiceUnavailable, err)
	default:
		log.L.Error("api error", zap.Error(err))
		return response.WrapError(http.StatusInternalServerError, err)
	}
}
