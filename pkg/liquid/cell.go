// Package liquid 实现基于网格的液体模拟核心
//
// 网格中的每个格子要么是固体（Solid），要么是水（Water）。
// 水格子持有一个填充量 Fill，表示格子内液体的体积比例（名义范围 0~1，
// 受压时可以暂时超过 1）。
//
// 每一帧的模拟步骤按固定顺序执行三个遍历：
//  1. FlowDown   - 重力下落
//  2. Equalize   - 水平均衡
//  3. Pressurize - 超压回流
//
// 每个遍历都从只读快照读取、写入独立的输出缓冲区，避免同一遍历内的读写冲突。
package liquid

import (
	"fmt"
	"strings"
)

// Kind 格子类型
type Kind int

const (
	// Water 水格子（默认类型）
	Water Kind = iota
	// Solid 固体格子，不参与任何流动
	Solid
)

// String 返回格子类型的名称
func (k Kind) String() string {
	switch k {
	case Water:
		return "water"
	case Solid:
		return "solid"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Toggle 在 Solid 和 Water 之间切换
func (k Kind) Toggle() Kind {
	if k == Solid {
		return Water
	}
	return Solid
}

// MarshalText 实现 encoding.TextMarshaler，用于 YAML 配置
func (k Kind) MarshalText() ([]byte, error) {
	if k != Water && k != Solid {
		return nil, fmt.Errorf("unknown cell kind: %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler，接受 "water" / "solid"（不区分大小写）
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseKind 解析格子类型名称
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "water":
		return Water, nil
	case "solid":
		return Solid, nil
	default:
		return Water, fmt.Errorf("unknown cell kind %q (want \"water\" or \"solid\")", s)
	}
}

// Cell 网格中的单个格子
//
// Col/Row 与格子在网格中的索引冗余，便于格子值被复制出网格后仍能定位。
// 固体格子的 Fill 不会被任何遍历读取或修改。
type Cell struct {
	Kind Kind
	Fill float64
	Col  int
	Row  int
}

// IsWater 是否为水格子
func (c Cell) IsWater() bool {
	return c.Kind == Water
}

// IsSolid 是否为固体格子
func (c Cell) IsSolid() bool {
	return c.Kind == Solid
}
