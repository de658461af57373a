package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource 每帧的指针和按键状态
// 桌面端和移动端使用 EbitenInput，测试中使用脚本化的实现
type InputSource interface {
	// PointerPosition 当前指针位置（逻辑屏幕坐标）
	PointerPosition() (x, y int)
	// PointerPressed 鼠标左键或触摸是否处于按下状态
	PointerPressed() bool
	// KeyJustPressed 按键是否在本帧刚被按下
	KeyJustPressed(key ebiten.Key) bool
}

// EbitenInput 从 ebiten 读取输入，同时支持鼠标和触摸（触摸优先）
type EbitenInput struct {
	touches []ebiten.TouchID
}

// NewEbitenInput 创建 ebiten 输入源
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

func (in *EbitenInput) PointerPosition() (int, int) {
	in.touches = ebiten.AppendTouchIDs(in.touches[:0])
	if len(in.touches) > 0 {
		return ebiten.TouchPosition(in.touches[0])
	}
	return ebiten.CursorPosition()
}

func (in *EbitenInput) PointerPressed() bool {
	in.touches = ebiten.AppendTouchIDs(in.touches[:0])
	if len(in.touches) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (in *EbitenInput) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
