package utils

import "regexp"

var hanRe = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]`)

// ContainsHan 是否包含中文字符（CJK 基本区）
func ContainsHan(s string) bool {
	return hanRe.MatchString(s)
}

// Truncate 按字符截取前 n 个
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
