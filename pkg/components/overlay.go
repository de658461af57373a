package components

// OverlayComponent 渲染叠加层开关
type OverlayComponent struct {
	ShowGridLines bool
	ShowHUD       bool
}
