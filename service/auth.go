package service

import (
	"PromptLib/config"
	"PromptLib/dao/cache"
	"PromptLib/models"
	"PromptLib/pkg/encrypt"
	"PromptLib/pkg/jwt"
	"PromptLib/pkg/log"
	"PromptLib/types"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSessionUnavailable redis 或 jwt 密钥未配置，会话无法签发/校验
	ErrSessionUnavailable = cache.ErrSessionUnavailable
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAdminExists        = errors.New("admin already exists")
)

// SessionStore 会话存储
type SessionStore interface {
	Set(ctx context.Context, sid string, adminID int64, ttl time.Duration) error
	Get(ctx context.Context, sid string) (int64, error)
	Del(ctx context.Context, sid string) error
}

var _ SessionStore = (*cache.SessionStorage)(nil)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Login(ctx context.Context, email, password string) (*types.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	// Verify 校验 token 且会话仍然存在
	Verify(ctx context.Context, token string) (*jwt.Claims, error)
	CreateAdmin(ctx context.Context, email, password string) (*models.Admin, error)
}

type AuthService struct {
	Jwt      *config.Jwt
	Admins   AdminStore
	Sessions SessionStore
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*types.LoginResponse, error) {
	if s.Jwt.Secret == "" {
		return nil, ErrSessionUnavailable
	}
	admin, err := s.Admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if admin == nil || !encrypt.VerifyPassword(admin.Password, password) {
		return nil, ErrInvalidCredentials
	}

	sid := uuid.NewString()
	ttl := s.Jwt.TTL()
	if err := s.Sessions.Set(ctx, sid, admin.ID, ttl); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	token, err := jwt.GenerateToken([]byte(s.Jwt.Secret), admin.ID, sid, jwt.TypeSession, ttl)
	if err != nil {
		return nil, err
	}

	log.L.Info("admin login", zap.Int64("admin_id", admin.ID))
	return &types.LoginResponse{Token: token, ExpiresIn: s.Jwt.Expire}, nil
}

func (s *AuthService) Verify(ctx context.Context, token string) (*jwt.Claims, error) {
	if s.Jwt.Secret == "" {
		return nil, ErrSessionUnavailable
	}
	if token == "" {
		return nil, ErrUnauthorized
	}
	claims, err := jwt.ParseToken([]byte(s.Jwt.Secret), jwt.TypeSession, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	adminID, err := s.Sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, cache.ErrSessionUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if adminID != claims.AdminID {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// Logout token 无效时视为已退出
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if s.Jwt.Secret == "" || token == "" {
		return nil
	}
	claims, err := jwt.ParseToken([]byte(s.Jwt.Secret), jwt.TypeSession, token)
	if err != nil {
		return nil
	}
	return s.Sessions.Del(ctx, claims.SessionID)
}

func (s *AuthService) CreateAdmin(ctx context.Context, email, password string) (*models.Admin, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	existing, err := s.Admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAdminExists
	}
	hash := encrypt.HashPassword(password)
	if hash == "" {
		return nil, errors.New("hash password failed")
	}
	return s.Admins.CreateAdmin(ctx, email, hash)
}
