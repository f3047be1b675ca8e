package utils

import (
	"strings"
	"testing"
	"time"
)

// ==================== 单元测试 ====================

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Bamboo Wind Chime", "bamboo-wind-chime"},
		{"  Trimmed  ", "trimmed"},
		{"Multi   Space", "multi-space"},
		{"under_score-and-dash", "under-score-and-dash"},
		{"Symbols!@# Stripped", "symbols-stripped"},
		{"Ends With Space ", "ends-with-space"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	// 确定性：同名同 slug
	if GenerateSlug("Clay Mug") != GenerateSlug("Clay Mug") {
		t.Error("slug 不确定")
	}
}

func TestGeneratePublicID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GeneratePublicID()
		if len(id) != PublicIDLength {
			t.Fatalf("len = %d, want %d", len(id), PublicIDLength)
		}
		for _, r := range id {
			if !strings.ContainsRune(publicIDCharset, r) {
				t.Fatalf("非法字符: %q in %s", r, id)
			}
		}
		if seen[id] {
			t.Fatalf("编号重复: %s", id)
		}
		seen[id] = true
	}
}

func TestGenerateNumericCode(t *testing.T) {
	code, err := GenerateNumericCode(6)
	if err != nil {
		t.Fatalf("生成验证码失败: %v", err)
	}
	if len(code) != 6 {
		t.Errorf("len = %d, want 6", len(code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Errorf("非数字字符: %q", r)
		}
	}
}

func TestCache(t *testing.T) {
	SetCache("test:key", "value", time.Minute)

	got, ok := GetCache("test:key")
	if !ok || got != "value" {
		t.Errorf("GetCache = %q, %v", got, ok)
	}

	DeleteCache("test:key")
	if _, ok := GetCache("test:key"); ok {
		t.Error("删除后仍能读到")
	}

	// 过期后读不到
	SetCache("test:expired", "value", -time.Second)
	if _, ok := GetCache("test:expired"); ok {
		t.Error("过期缓存仍能读到")
	}

	if _, ok := GetCache("test:missing"); ok {
		t.Error("不存在的键返回了值")
	}
}
