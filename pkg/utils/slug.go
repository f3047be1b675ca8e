package utils

import (
	"strings"
	"unicode"
)

// GenerateSlug 根据名称生成 slug
// 规则：小写、空白折叠为连字符、去掉非字母数字字符，结果确定性
func GenerateSlug(name string) string {
	var b strings.Builder
	lastHyphen := true // 避免开头出现连字符

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
