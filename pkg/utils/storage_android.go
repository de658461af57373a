//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在打开 gdata 之前创建 Android 应用私有目录下的存储目录
//
// gdata 在 Android 上写入 /data/data/{package}/{appName}，但不会创建中间目录。
func EnsureStorageDir(appName string) error {
	pkg, err := androidPackage()
	if err != nil {
		return fmt.Errorf("failed to detect android package: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}
	return nil
}

// androidPackage 从 /proc/self/cmdline 读取进程名（即应用包名）
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
