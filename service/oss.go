package service

import (
	"PromptLib/config"
	"PromptLib/pkg/imageproc"
	"PromptLib/pkg/log"
	ossclient "PromptLib/pkg/oss"
	"PromptLib/pkg/utils"
	"PromptLib/types"
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"go.uber.org/zap"
)

// ErrStorageUnavailable 对象存储未配置
var ErrStorageUnavailable = errors.New("object storage is not configured")

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadImage 上传预处理后的 JPEG，返回对象 key 与公网地址
	UploadImage(ctx context.Context, payload []byte) (*types.StoredObject, error)

	// Delete 删除对象
	Delete(ctx context.Context, objectKey string) error
}

type OssService struct {
	Client *oss.Client
	Conf   *config.OssConfig
}

func NewOssService(conf *config.OssConfig) *OssService {
	if conf == nil {
		conf = &config.OssConfig{}
	}
	if !conf.Enabled() {
		log.L.Warn("oss is not configured, image upload disabled",
			zap.String("endpoint", conf.Endpoint),
			zap.String("bucket", conf.Bucket),
		)
		return &OssService{Conf: conf}
	}
	return &OssService{
		Client: ossclient.NewClient(conf),
		Conf:   conf,
	}
}

func (s *OssService) UploadImage(ctx context.Context, payload []byte) (*types.StoredObject, error) {
	if s.Client == nil {
		return nil, ErrStorageUnavailable
	}

	objectKey := ObjectKey(time.Now())
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(s.Conf.Bucket),
		Key:         oss.Ptr(objectKey),
		ContentType: oss.Ptr(imageproc.MimeType),
		Body:        bytes.NewReader(payload),
	}); err != nil {
		return nil, fmt.Errorf("put object %s: %w", objectKey, err)
	}

	return &types.StoredObject{
		Key: objectKey,
		URL: s.Conf.PublicURL(objectKey),
	}, nil
}

func (s *OssService) Delete(ctx context.Context, objectKey string) error {
	if s.Client == nil {
		return ErrStorageUnavailable
	}
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.Conf.Bucket),
		Key:    oss.Ptr(objectKey),
	})
	return err
}

// ObjectKey {毫秒时间戳}-{随机串}.jpg
func ObjectKey(now time.Time) string {
	return fmt.Sprintf("%d-%s.jpg", now.UnixMilli(), utils.RandomToken())
}
