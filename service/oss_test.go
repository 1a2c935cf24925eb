package service

import (
	"PromptLib/config"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	key := ObjectKey(now)
	assert.Regexp(t, regexp.MustCompile(`^1700000000123-[a-z0-9]{6,}\.jpg$`), key)
	assert.NotEqual(t, key, ObjectKey(now))
}

func TestOssService_Unconfigured(t *testing.T) {
	for _, conf := range []*config.OssConfig{nil, {}, {Bucket: "prompts"}} {
		s := NewOssService(conf)
		require.NotNil(t, s.Conf)
		assert.Nil(t, s.Client)

		_, err := s.UploadImage(context.Background(), []byte{0xff})
		assert.ErrorIs(t, err, ErrStorageUnavailable)
		assert.ErrorIs(t, s.Delete(context.Background(), "a.jpg"), ErrStorageUnavailable)
	}
}
