package service

import "testing"

// ==================== 单元测试 ====================

func TestCanActivate(t *testing.T) {
	cases := []struct {
		name        string
		activeID    int64
		candidateID int64
		want        bool
	}{
		{"没有启用中的资源", 0, 5, true},
		{"没有启用中的资源且新建", 0, 0, true},
		{"重复启用同一资源", 3, 3, true},
		{"已有别的启用资源", 3, 5, false},
		{"已有启用资源且新建", 3, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := canActivate(tc.activeID, tc.candidateID); got != tc.want {
				t.Errorf("canActivate(%d, %d) = %v, want %v", tc.activeID, tc.candidateID, got, tc.want)
			}
		})
	}
}
