//go:build !mobile

// Package mobile 的桌面端占位
//
// ebitenmobile 绑定代码只在 -tags mobile 下编译；普通的 go build ./... 只看到这里。
package mobile

// Dummy 让包在桌面端构建中保持非空
func Dummy() {}
