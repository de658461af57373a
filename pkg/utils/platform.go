//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 "1" 时在桌面端模拟移动模式（本地调试触摸界面用）
const MobileEmulateEnv = "LIQUIDSIM_MOBILE_EMULATE"

// IsMobile 当前是否以移动模式运行
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
