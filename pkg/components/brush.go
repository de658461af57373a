package components

import "github.com/decker502/liquidsim/pkg/editor"

// BrushComponent 画笔实体
//
// LastCol/LastRow 记录上一帧的指针格子，用于补齐拖动轨迹；
// Stroking 为 false 时表示新一笔刚开始。
type BrushComponent struct {
	Brush    editor.Brush
	Stroking bool
	LastCol  int
	LastRow  int
}
