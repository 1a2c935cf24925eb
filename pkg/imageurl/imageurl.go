package imageurl

import (
	"net/url"
	"strconv"
)

const (
	Format  = "webp"
	Quality = 80
	Resize  = "contain"

	// DetailWidth 详情大图宽度
	DetailWidth = 1200
)

// Optimized 按对象存储的图片变换约定追加 width/format/quality/resize 参数
// 空串返回空串；无法解析或不是绝对地址的原样返回
func Optimized(raw string, width int) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return raw
	}

	q := u.Query()
	q.Set("width", strconv.Itoa(width))
	q.Set("format", Format)
	q.Set("quality", strconv.Itoa(Quality))
	q.Set("resize", Resize)
	u.RawQuery = q.Encode()
	return u.String()
}
