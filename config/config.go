package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	Database *Database       `json:"database" yaml:"database"`
	Jwt      *Jwt            `json:"jwt" yaml:"jwt"`
	Oss      *OssConfig      `json:"oss" yaml:"oss"`
	LLM      *LLMConfig      `json:"llm" yaml:"llm"`
	Analyzer *AnalyzerConfig `json:"analyzer" yaml:"analyzer"`
	Server   *Server         `json:"server" yaml:"server"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New 读取 yaml 配置文件，文件不存在时使用默认值，最后叠加环境变量
func New(filename string) *Config {
	// .env 文件可选
	_ = godotenv.Load()

	conf := Default()

	content, err := os.ReadFile(filename)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		panic(err)
	}
	if err == nil {
		if err := yaml.Unmarshal(content, conf); err != nil {
			panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
		}
	}

	conf.applyEnv()
	return conf
}

// Default 默认配置
func Default() *Config {
	return &Config{
		App:      &App{Env: "dev", Name: "prompt-library"},
		Redis:    &Redis{Port: 6379},
		Database: &Database{Driver: DriverPostgres},
		Jwt:      &Jwt{Expire: 7 * 24 * 3600},
		Oss:      &OssConfig{Bucket: "prompts"},
		LLM: &LLMConfig{
			BaseURL: DefaultLLMBaseURL,
			Model:   DefaultLLMModel,
		},
		Analyzer: &AnalyzerConfig{},
		Server:   &Server{Http: 8080},
	}
}

func (c *Config) applyEnv() {
	setInt(&c.Server.Http, "SERVER_HTTP")
	setString(&c.App.Env, "APP_ENV")

	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.Dsn, "DB_DSN")

	setString(&c.Redis.Address, "REDIS_ADDR")
	setInt(&c.Redis.Port, "REDIS_PORT")
	setString(&c.Redis.Password, "REDIS_PASSWORD")

	setString(&c.Oss.Endpoint, "OSS_ENDPOINT")
	setString(&c.Oss.Region, "OSS_REGION")
	setString(&c.Oss.Bucket, "OSS_BUCKET")
	setString(&c.Oss.AccessKeyID, "OSS_AK")
	setString(&c.Oss.AccessKeySecret, "OSS_SK")
	setString(&c.Oss.PublicBaseURL, "OSS_PUBLIC_BASE_URL")

	setString(&c.LLM.APIKey, "GEMINI_API_KEY")
	setString(&c.LLM.APIKey, "LLM_API_KEY")
	setString(&c.LLM.BaseURL, "LLM_BASE_URL")
	setString(&c.LLM.Model, "LLM_MODEL")

	setString(&c.Jwt.Secret, "JWT_SECRET")
	setString(&c.Analyzer.Endpoint, "ANALYZER_ENDPOINT")
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

// AnalyzerEndpoint 分析接口地址，未配置时指向本服务
func (c *Config) AnalyzerEndpoint() string {
	if c.Analyzer.Endpoint != "" {
		return c.Analyzer.Endpoint
	}
	return fmt.Sprintf("http://127.0.0.1:%d/api/analyze", c.Server.Http)
}

// Warnings 缺失的后端配置，对应功能会降级而不是启动失败
func (c *Config) Warnings() []string {
	var warns []string
	if c.Database.Dsn == "" {
		warns = append(warns, "database dsn is missing, prompt and tag storage will not work")
	}
	if c.Redis.Address == "" {
		warns = append(warns, "redis address is missing, admin login will not work")
	}
	if !c.Oss.Enabled() {
		warns = append(warns, "oss endpoint or bucket is missing, image upload will not work")
	} else if !c.Oss.HasStaticCredentials() {
		warns = append(warns, "oss ak/sk is missing, reading OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET from env")
	}
	if c.LLM.APIKey == "" {
		warns = append(warns, "llm api key is missing, prompt analysis will fall back to the raw text")
	}
	if c.Jwt.Secret == "" {
		warns = append(warns, "jwt secret is missing, admin sessions cannot be issued")
	}
	return warns
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}
