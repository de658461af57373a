package systems

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/decker502/liquidsim/pkg/components"
	"github.com/decker502/liquidsim/pkg/ecs"
	"github.com/decker502/liquidsim/pkg/editor"
	"github.com/decker502/liquidsim/pkg/game"
	"github.com/decker502/liquidsim/pkg/liquid"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeInput 脚本化的输入源
type fakeInput struct {
	x, y    int
	pressed bool
	keys    map[ebiten.Key]bool
}

func (f *fakeInput) PointerPosition() (int, int)      { return f.x, f.y }
func (f *fakeInput) PointerPressed() bool             { return f.pressed }
func (f *fakeInput) KeyJustPressed(k ebiten.Key) bool { return f.keys[k] }

// press 设置本帧刚按下的按键（不传参数表示没有按键）
func (f *fakeInput) press(keys ...ebiten.Key) {
	f.keys = make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		f.keys[k] = true
	}
}

func (f *fakeInput) moveTo(x, y int, pressed bool) {
	f.x, f.y, f.pressed = x, y, pressed
}

// world 测试用的实体集合：一个网格实体和一个画笔实体
type world struct {
	em      *ecs.EntityManager
	grid    *liquid.Grid
	state   *components.SimulationStateComponent
	overlay *components.OverlayComponent
	brush   *components.BrushComponent
}

func newWorld(t *testing.T, cols, rows int) *world {
	t.Helper()
	g, err := liquid.NewGrid(cols, rows)
	if err != nil {
		t.Fatal(err)
	}
	w := &world{
		em:      ecs.NewEntityManager(),
		grid:    g,
		state:   &components.SimulationStateComponent{},
		overlay: &components.OverlayComponent{ShowHUD: true},
		brush:   &components.BrushComponent{Brush: editor.NewBrush(liquid.Solid)},
	}
	gridID := w.em.CreateEntity()
	w.em.AddComponent(gridID, &components.LiquidGridComponent{Grid: g})
	w.em.AddComponent(gridID, w.state)
	w.em.AddComponent(gridID, w.overlay)
	brushID := w.em.CreateEntity()
	w.em.AddComponent(brushID, w.brush)
	return w
}

func (w *world) cell(t *testing.T, col, row int) liquid.Cell {
	t.Helper()
	c, err := w.grid.Get(col, row)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestInputSystemBrushKeys(t *testing.T) {
	w := newWorld(t, 4, 4)
	in := &fakeInput{}
	sys := NewInputSystem(w.em, in, 10)

	in.press(KeyToggleKind)
	sys.Update()
	if w.brush.Brush.Kind != liquid.Water {
		t.Errorf("Kind = %v, want water after Space", w.brush.Brush.Kind)
	}

	in.press(KeyToggleErase)
	sys.Update()
	if w.brush.Brush.Mode != editor.ModeErase {
		t.Errorf("Mode = %v, want erase after Backspace", w.brush.Brush.Mode)
	}
}

func TestInputSystemDragPaint(t *testing.T) {
	w := newWorld(t, 10, 10)
	in := &fakeInput{}
	sys := NewInputSystem(w.em, in, 10)
	in.press()

	// 按下后拖动到同一行的另一端，中间格子被补齐
	in.moveTo(5, 35, true)
	sys.Update()
	in.moveTo(65, 35, true)
	sys.Update()
	for col := 0; col <= 6; col++ {
		if !w.cell(t, col, 3).IsSolid() {
			t.Errorf("cell (%d, 3) should be solid", col)
		}
	}

	// 松开后再按下，不与上一笔相连
	in.moveTo(65, 35, false)
	sys.Update()
	in.moveTo(95, 95, true)
	sys.Update()
	if !w.cell(t, 9, 9).IsSolid() {
		t.Error("cell (9, 9) should be solid")
	}
	if w.cell(t, 8, 8).IsSolid() {
		t.Error("cell (8, 8) should not be connected to the previous stroke")
	}

	// 窗口外的指针被忽略
	in.moveTo(-50, 500, true)
	in.press()
	sys.Update()
}

func TestInputSystemSimulationKeys(t *testing.T) {
	w := newWorld(t, 2, 2)
	in := &fakeInput{}
	sys := NewInputSystem(w.em, in, 10)

	// 运行时 N 无效
	in.press(KeySingleStep)
	sys.Update()
	if w.state.StepRequests != 0 {
		t.Errorf("StepRequests = %d while running, want 0", w.state.StepRequests)
	}

	in.press(KeyPause)
	sys.Update()
	if !w.state.Paused {
		t.Fatal("P should pause")
	}
	in.press(KeySingleStep)
	sys.Update()
	sys.Update()
	if w.state.StepRequests != 2 {
		t.Errorf("StepRequests = %d, want 2", w.state.StepRequests)
	}

	// 恢复运行时清除错误
	w.state.Err = errors.New("boom")
	in.press(KeyPause)
	sys.Update()
	if w.state.Paused || w.state.Err != nil {
		t.Errorf("resume should clear error: paused=%v err=%v", w.state.Paused, w.state.Err)
	}

	in.press(KeyGridLines, KeyHUD)
	sys.Update()
	if !w.overlay.ShowGridLines || w.overlay.ShowHUD {
		t.Errorf("overlay = %+v, want grid lines on, hud off", *w.overlay)
	}
}

func TestInputSystemResetSkipsPaint(t *testing.T) {
	w := newWorld(t, 2, 2)
	in := &fakeInput{}
	sys := NewInputSystem(w.em, in, 10)

	in.press(KeyReset)
	in.moveTo(5, 5, true)
	cmds := sys.Update()
	if !cmds.Reset {
		t.Error("R should request reset")
	}
	if w.cell(t, 0, 0).IsSolid() {
		t.Error("no painting on the reset frame")
	}
}

func TestInputSystemNoEntities(t *testing.T) {
	sys := NewInputSystem(ecs.NewEntityManager(), &fakeInput{}, 10)
	if cmds := sys.Update(); cmds.Reset {
		t.Error("empty world should produce no commands")
	}
}

// fakeStepper 在指定步数失败
type fakeStepper struct {
	ticks  uint64
	failAt uint64
}

var errFake = errors.New("fake failure")

func (f *fakeStepper) Step(g *liquid.Grid) (liquid.StepStats, error) {
	if f.failAt != 0 && f.ticks+1 == f.failAt {
		return liquid.StepStats{}, errFake
	}
	f.ticks++
	return liquid.StepStats{Tick: f.ticks}, nil
}

func (f *fakeStepper) Ticks() uint64 { return f.ticks }

func TestSimulationSystemFixedStep(t *testing.T) {
	w := newWorld(t, 1, 3)
	stepper := &fakeStepper{}
	sys := NewSimulationSystem(w.em, stepper, game.NewFixedStep(30*time.Millisecond, 4))

	if n := sys.Update(0.016); n != 0 {
		t.Errorf("first frame steps = %d, want 0", n)
	}
	if n := sys.Update(0.016); n != 1 {
		t.Errorf("second frame steps = %d, want 1", n)
	}
	// 卡顿一秒，最多追赶 4 步
	if n := sys.Update(1.0); n != 4 {
		t.Errorf("stall frame steps = %d, want 4", n)
	}
	if w.state.LastStats.Tick != 5 {
		t.Errorf("LastStats.Tick = %d, want 5", w.state.LastStats.Tick)
	}
}

func TestSimulationSystemPausedSingleStep(t *testing.T) {
	w := newWorld(t, 1, 3)
	stepper := &fakeStepper{}
	sys := NewSimulationSystem(w.em, stepper, game.NewFixedStep(30*time.Millisecond, 4))

	w.state.Paused = true
	if n := sys.Update(1.0); n != 0 {
		t.Errorf("paused steps = %d, want 0", n)
	}
	w.state.StepRequests = 2
	if n := sys.Update(0.016); n != 2 {
		t.Errorf("single-step frame = %d, want 2", n)
	}
	if w.state.StepRequests != 0 {
		t.Errorf("StepRequests = %d, want 0", w.state.StepRequests)
	}
}

func TestSimulationSystemPausesOnError(t *testing.T) {
	w := newWorld(t, 1, 3)
	stepper := &fakeStepper{failAt: 2}
	sys := NewSimulationSystem(w.em, stepper, game.NewFixedStep(0, 0))

	if n := sys.Update(0.016); n != 1 {
		t.Fatalf("steps = %d, want 1", n)
	}
	if n := sys.Update(0.016); n != 0 {
		t.Errorf("failing frame steps = %d, want 0", n)
	}
	if !w.state.Paused || !errors.Is(w.state.Err, errFake) {
		t.Errorf("state = paused %v err %v, want paused with errFake", w.state.Paused, w.state.Err)
	}
}

// TestSimulationSystemWithSimulator 与真实模拟器集成：一列水最终落到底部
func TestSimulationSystemWithSimulator(t *testing.T) {
	w := newWorld(t, 1, 3)
	_ = w.grid.Set(0, 0, liquid.Cell{Kind: liquid.Water, Fill: 1})

	sim, err := liquid.NewSimulator(liquid.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	sys := NewSimulationSystem(w.em, sim, game.NewFixedStep(0, 0))
	for i := 0; i < 50; i++ {
		sys.Update(0.016)
	}
	if c := w.cell(t, 0, 2); c.Fill < 0.999 {
		t.Errorf("bottom fill = %v, want ~1", c.Fill)
	}
	if total := liquid.TotalFill(w.grid); total < 0.999999 || total > 1.000001 {
		t.Errorf("total = %v, want 1", total)
	}
}

func TestHUDText(t *testing.T) {
	brush := &components.BrushComponent{Brush: editor.NewBrush(liquid.Water)}
	state := &components.SimulationStateComponent{
		Paused:    true,
		LastStats: liquid.StepStats{Tick: 42},
		Err:       errFake,
	}
	text := HUDText(brush, state, liquid.Measurement{TotalFill: 12.5, MaxFill: 1.25}, "column", false)

	for _, want := range []string{"brush: water", "fill: 12.500", "max: 1.250", "tick: 42", "paused", "[column]", "error: fake failure"} {
		if !strings.Contains(text, want) {
			t.Errorf("HUD text missing %q:\n%s", want, text)
		}
	}

	if !strings.Contains(text, "Space kind") {
		t.Errorf("desktop HUD should list key bindings:\n%s", text)
	}

	plain := HUDText(nil, nil, liquid.Measurement{}, "", true)
	if !strings.Contains(plain, "running") || strings.Contains(plain, "error") {
		t.Errorf("unexpected HUD text:\n%s", plain)
	}
	if strings.Contains(plain, "Space") || !strings.Contains(plain, "drag to paint") {
		t.Errorf("touch HUD should not list key bindings:\n%s", plain)
	}
}
