package handler

import (
	"PromptLib/config"
	"PromptLib/pkg/context"
	"PromptLib/pkg/llm"
	"PromptLib/pkg/log"
	"PromptLib/types"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Analyze 翻译/摘要代理接口，响应格式固定，不使用统一 envelope
type Analyze struct {
	Config   *config.LLMConfig
	Analyzer llm.IPromptAnalyzer
}

func (h *Analyze) RegisterRouter(r gin.IRouter) {
	r.Any("/api/analyze", context.Wrap(h.Analyze))
}

func (h *Analyze) Analyze(c *gin.Context) error {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
		return nil
	}

	var req types.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.L.Warn("analyze bad request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis Failed", "details": err.Error()})
		return nil
	}

	if h.Config == nil || h.Config.APIKey == "" {
		log.L.Error("llm api key is missing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Configuration Error: Missing API Key"})
		return nil
	}

	body, err := h.Analyzer.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		log.L.Error("analyze failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis Failed", "details": err.Error()})
		return nil
	}

	c.Data(http.StatusOK, "application/json", body)
	return nil
}
