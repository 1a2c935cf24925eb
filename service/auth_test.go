package service

import (
	"PromptLib/config"
	"PromptLib/dao/cache"
	"PromptLib/pkg/encrypt"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })

	admins := &fakeAdminStore{}
	_, err := admins.CreateAdmin(context.Background(), "admin@example.com", encrypt.HashPassword("correct-horse"))
	require.NoError(t, err)

	return &AuthService{
		Jwt:      &config.Jwt{Secret: "test-secret", Expire: 3600},
		Admins:   admins,
		Sessions: cache.NewSessionStorage(rds),
	}, mr
}

func TestAuthService_LoginVerifyLogout(t *testing.T) {
	s, mr := newAuthService(t)
	ctx := context.Background()

	resp, err := s.Login(ctx, "admin@example.com", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Len(t, mr.Keys(), 1)

	claims, err := s.Verify(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.AdminID)

	require.NoError(t, s.Logout(ctx, resp.Token))
	assert.Empty(t, mr.Keys())

	_, err = s.Verify(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_InvalidCredentials(t *testing.T) {
	s, mr := newAuthService(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login(ctx, "nobody@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, mr.Keys())
}

func TestAuthService_Verify(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()

	_, err := s.Verify(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = s.Verify(ctx, "garbage")
	assert.ErrorIs(t, err, ErrUnauthorized)

	resp, err := s.Login(ctx, "admin@example.com", "correct-horse")
	require.NoError(t, err)
	other := *s
	other.Jwt = &config.Jwt{Secret: "another-secret", Expire: 3600}
	_, err = other.Verify(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_Unconfigured(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()

	noRedis := *s
	noRedis.Sessions = cache.NewSessionStorage(nil)
	_, err := noRedis.Login(ctx, "admin@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrSessionUnavailable)

	resp, err := s.Login(ctx, "admin@example.com", "correct-horse")
	require.NoError(t, err)
	_, err = noRedis.Verify(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrSessionUnavailable)

	noSecret := *s
	noSecret.Jwt = &config.Jwt{Expire: 3600}
	_, err = noSecret.Login(ctx, "admin@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrSessionUnavailable)
}

func TestAuthService_CreateAdmin(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()

	admin, err := s.CreateAdmin(ctx, "second@example.com", "password123")
	require.NoError(t, err)
	assert.True(t, encrypt.VerifyPassword(admin.Password, "password123"))

	_, err = s.CreateAdmin(ctx, "admin@example.com", "password123")
	assert.ErrorIs(t, err, ErrAdminExists)
}
