package utils

import (
	"crypto/rand"
	"strings"

	"github.com/google/uuid"
)

// PublicIDLength 对外业务编号的固定长度
const PublicIDLength = 14

const publicIDCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomString 生成指定长度的随机字符串（字母+数字）
func GenerateRandomString(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	var result strings.Builder
	for _, bVal := range b {
		result.WriteByte(publicIDCharset[int(bVal)%len(publicIDCharset)])
	}
	return result.String(), nil
}

// GenerateNumericCode 生成指定长度的纯数字验证码
func GenerateNumericCode(length int) (string, error) {
	const digits = "0123456789"
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	var result strings.Builder
	for _, bVal := range b {
		result.WriteByte(digits[int(bVal)%len(digits)])
	}
	return result.String(), nil
}

// GeneratePublicID 生成业务编号
// 用于 order_id / return_refund_id / seller_balance_id 等对外暴露的 ID，
// 14 位字母数字，碰撞概率可忽略。
// crypto/rand 读取失败时退化为 UUID 前缀，保证调用方总能拿到编号
func GeneratePublicID() string {
	id, err := GenerateRandomString(PublicIDLength)
	if err != nil {
		return strings.ReplaceAll(uuid.NewString(), "-", "")[:PublicIDLength]
	}
	return id
}
