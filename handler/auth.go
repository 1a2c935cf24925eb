package handler

import (
	"PromptLib/config"
	"PromptLib/middleware"
	"PromptLib/pkg/context"
	"PromptLib/pkg/log"
	"PromptLib/pkg/response"
	"PromptLib/service"
	"PromptLib/types"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Auth struct {
	Jwt         *config.Jwt
	AuthService service.IAuthService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	api := r.Group("/api/v1/auth")
	api.POST("/login", context.Wrap(h.ApiLogin))
}

func (h *Auth) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Login"})
}

func (h *Auth) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"Title": "Login", "Error": "Email and password are required.", "Email": req.Email})
		return
	}

	resp, err := h.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, msg := loginError(err)
		c.HTML(status, "login.html", gin.H{"Title": "Login", "Error": msg, "Email": req.Email})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, resp.Token, int(h.Jwt.Expire), "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin")
}

func (h *Auth) Logout(c *gin.Context) {
	if err := h.AuthService.Logout(c.Request.Context(), middleware.Token(c)); err != nil {
		log.L.Warn("logout failed", zap.Error(err))
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

func (h *Auth) ApiLogin(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.WrapError(http.StatusBadRequest, err)
	}
	resp, err := h.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, msg := loginError(err)
		return response.NewError(status, msg)
	}
	response.Success(c, resp)
	return nil
}

func loginError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password."
	case errors.Is(err, service.ErrSessionUnavailable):
		log.L.Error("login unavailable", zap.Error(err))
		return http.StatusServiceUnavailable, "Login is not available right now."
	default:
		log.L.Error("login failed", zap.Error(err))
		return http.StatusInternalServerError, "Login failed."
	}
}
