// Package editor 把指针和按键输入转换为对网格的写入
//
// 编辑器只负责"写什么、写到哪"：画笔选择格子类型（Space 切换）和
// 绘制/擦除模式（Backspace 切换），按下鼠标拖动时沿轨迹写入格子。
// 越界坐标（例如拖出窗口）被忽略，不会传播为错误。
package editor

import (
	"log"

	"github.com/decker502/liquidsim/pkg/liquid"
)

// Mode 画笔模式
type Mode int

const (
	// ModePaint 写入当前类型、填充量 1 的格子
	ModePaint Mode = iota
	// ModeErase 写入填充量 0 的空水格
	ModeErase
)

// String 返回模式名称（HUD 使用）
func (m Mode) String() string {
	if m == ModeErase {
		return "erase"
	}
	return "paint"
}

// Brush 画笔状态
type Brush struct {
	Kind liquid.Kind
	Mode Mode
}

// NewBrush 创建绘制模式的画笔
func NewBrush(kind liquid.Kind) Brush {
	return Brush{Kind: kind, Mode: ModePaint}
}

// ToggleKind 在 Solid 和 Water 之间切换，返回切换后的类型
func (b *Brush) ToggleKind() liquid.Kind {
	b.Kind = b.Kind.Toggle()
	log.Printf("[Editor] brush kind: %s", b.Kind)
	return b.Kind
}

// ToggleMode 在绘制和擦除之间切换，返回切换后的模式
//
// 擦除不改变已选择的格子类型，切回绘制模式后继续使用原来的类型。
func (b *Brush) ToggleMode() Mode {
	if b.Mode == ModePaint {
		b.Mode = ModeErase
	} else {
		b.Mode = ModePaint
	}
	log.Printf("[Editor] brush mode: %s", b.Mode)
	return b.Mode
}

// Cell 返回画笔写入的格子（位置由 Grid.Set 填写）
//
// 擦除总是写入空水格，这样固体也能被擦掉。
func (b Brush) Cell() liquid.Cell {
	if b.Mode == ModeErase {
		return liquid.Cell{Kind: liquid.Water, Fill: 0}
	}
	return liquid.Cell{Kind: b.Kind, Fill: 1}
}

// Label HUD 显示用的简短描述
func (b Brush) Label() string {
	if b.Mode == ModeErase {
		return "erase"
	}
	return b.Kind.String()
}
