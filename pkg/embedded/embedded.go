// Package embedded 提供嵌入数据文件的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包保存该文件系统，让 app 和命令行工具可以读取默认配置和场景预设。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ConfigPath 默认模拟配置
	ConfigPath = "data/liquid.yaml"
	// ScenariosPath 默认场景预设
	ScenariosPath = "data/scenarios.yaml"
)

var (
	dataFS      fs.FS
	initialized bool
)

var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 初始化数据文件系统
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径：正斜杠、去掉 "./" 前缀，且必须位于 data/ 下
func normalize(path string) (string, error) {
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// Open 打开嵌入的数据文件
func Open(path string) (fs.File, error) {
	if !initialized {
		return nil, errNotInitialized
	}
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return dataFS.Open(p)
}

// ReadFile 读取嵌入的数据文件
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, errNotInitialized
	}
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, p)
}

// Exists 检查文件是否存在于嵌入文件系统中
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// ReadFileOrEmbedded 读取磁盘文件；override 为空时回退到嵌入的 fallback
//
// 命令行参数 -config / -scenarios 使用此函数，
// 以便发布的二进制在没有 data/ 目录时也能运行。
func ReadFileOrEmbedded(override, fallback string) ([]byte, error) {
	if override != "" {
		data, err := os.ReadFile(override)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", override, err)
		}
		return data, nil
	}
	data, err := ReadFile(fallback)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", fallback, err)
	}
	return data, nil
}
