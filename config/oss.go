package config

import "fmt"

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
	// PublicBaseURL 公网访问前缀（CDN），为空时使用 https://{bucket}.{endpoint}
	PublicBaseURL string `json:"public_base_url" yaml:"public_base_url"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}

// Enabled 是否具备上传所需的配置，ak/sk 可以改由环境变量提供
func (o *OssConfig) Enabled() bool {
	return o != nil && o.Endpoint != "" && o.Bucket != ""
}

func (o *OssConfig) HasStaticCredentials() bool {
	return o.AccessKeyID != "" && o.AccessKeySecret != ""
}

// PublicURL 对象的公网地址
func (o *OssConfig) PublicURL(objectKey string) string {
	if o.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s", trimSlash(o.PublicBaseURL), objectKey)
	}
	return fmt.Sprintf("https://%s.%s/%s", o.Bucket, o.Endpoint, objectKey)
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
