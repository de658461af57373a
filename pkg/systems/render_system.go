package systems

import (
	"strings"

	"github.com/decker502/liquidsim/pkg/components"
	"github.com/decker502/liquidsim/pkg/ecs"
	"github.com/decker502/liquidsim/pkg/liquid"
	"github.com/decker502/liquidsim/pkg/render"
	"github.com/decker502/liquidsim/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ebitenutil 调试字体的字符尺寸
const (
	debugCharWidth  = 6
	debugLineHeight = 16
	hudPadding      = 4
)

// RenderSystem 绘制液体网格和状态行
type RenderSystem struct {
	entityManager *ecs.EntityManager
	renderer      *render.Renderer
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, renderer *render.Renderer) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		renderer:      renderer,
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	gridID, gridComp, ok := ecs.First[*components.LiquidGridComponent](s.entityManager)
	if !ok {
		s.renderer.Draw(screen, nil, false)
		return
	}

	overlay, _ := ecs.GetComponent[*components.OverlayComponent](s.entityManager, gridID)
	showLines := overlay != nil && overlay.ShowGridLines
	s.renderer.Draw(screen, gridComp.Grid, showLines)

	if overlay == nil || !overlay.ShowHUD {
		return
	}
	state, _ := ecs.GetComponent[*components.SimulationStateComponent](s.entityManager, gridID)
	_, brush, _ := ecs.First[*components.BrushComponent](s.entityManager)
	text := HUDText(brush, state, liquid.Measure(gridComp.Grid), gridComp.Scenario, utils.IsMobile())
	s.drawHUD(screen, text)
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image, text string) {
	lines := strings.Split(text, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	if bg := s.renderer.Style().HUD; bg != nil {
		w := float32(width*debugCharWidth + 2*hudPadding)
		h := float32(len(lines)*debugLineHeight + hudPadding)
		vector.DrawFilledRect(screen, 0, 0, w, h, bg, false)
	}
	ebitenutil.DebugPrintAt(screen, text, hudPadding, 0)
}
