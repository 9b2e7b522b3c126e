package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// OpenStorage 打开 gdata 跨平台存储
//
// 初始化失败时返回 nil，调用方进入降级模式（仅内存保存），游戏仍可运行。
func OpenStorage(appName string) *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[Storage] Warning: Failed to open gdata storage %q: %v (running without persistence)", appName, err)
		return nil
	}

	log.Printf("[Storage] gdata storage opened: %s", appName)
	return manager
}
