package utils

// ShootHint 返回开始界面上的操作提示
func ShootHint() string {
	if IsMobile() {
		return "TAP TARGETS TO SHOOT"
	}
	return "CLICK TARGETS TO SHOOT"
}
