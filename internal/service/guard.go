package service

// ==================== 独占资源检查 ====================

// canActivate 判断是否允许为 owner 启用候选资源
// active: 当前启用中的同类资源 ID（0 表示没有）
// candidate: 候选资源 ID（0 表示新建）
// 规则：没有启用中的资源时放行；启用中的就是候选自己（重复启用同一行）也放行
func canActivate(activeID, candidateID int64) bool {
	if activeID == 0 {
		return true
	}
	return activeID == candidateID
}
