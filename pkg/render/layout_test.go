package render

import (
	"image/color"
	"testing"

	"github.com/decker502/liquidsim/pkg/config"
	"github.com/decker502/liquidsim/pkg/liquid"
	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	testWater = color.NRGBA{0x03, 0xA9, 0xF4, 0xFF}
	testSolid = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

func testStyle() Style {
	return Style{
		CellSize:          10,
		LineWidth:         2,
		FountainThreshold: 0.015,
		Background:        color.RGBA{A: 0xFF},
		Water:             testWater,
		Solid:             testSolid,
		GridLine:          color.RGBA{0x20, 0x15, 0x13, 0xFF},
	}
}

func TestWaterRect(t *testing.T) {
	tests := []struct {
		name       string
		col, row   int
		fill       float64
		continuous bool
		want       Rect
	}{
		{"半满贴底", 1, 2, 0.5, false, Rect{X: 10, Y: 25, W: 10, H: 5}},
		{"满格", 0, 0, 1.0, false, Rect{X: 0, Y: 0, W: 10, H: 10}},
		{"超压按满格画", 3, 1, 1.7, false, Rect{X: 30, Y: 10, W: 10, H: 10}},
		{"空格", 0, 0, 0, false, Rect{}},
		{"负数填充", 0, 0, -0.01, false, Rect{}},
		{"连续水柱画满", 2, 2, 0.1, true, Rect{X: 20, Y: 20, W: 10, H: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WaterRect(tt.col, tt.row, 10, tt.fill, tt.continuous)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WaterRect() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContinuous(t *testing.T) {
	water := func(f float64) liquid.Cell { return liquid.Cell{Kind: liquid.Water, Fill: f} }
	solid := liquid.Cell{Kind: liquid.Solid, Fill: 1}

	tests := []struct {
		name    string
		current liquid.Cell
		above   *liquid.Cell
		want    bool
	}{
		{"两格都有水", water(0.1), ptr(water(0.2)), true},
		{"上方低于阈值", water(0.1), ptr(water(0.01)), false},
		{"自身低于阈值", water(0.015), ptr(water(0.5)), false},
		{"上方是固体", water(0.5), ptr(solid), false},
		{"自身是固体", solid, ptr(water(0.5)), false},
		{"顶行", water(0.5), nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Continuous(tt.current, tt.above, 0.015); got != tt.want {
				t.Errorf("Continuous() = %v, want %v", got, tt.want)
			}
		})
	}
}

func ptr(c liquid.Cell) *liquid.Cell { return &c }

func TestAppendCellShapes(t *testing.T) {
	// 2 列 x 3 行：
	//   row 0: water 0.5 | solid
	//   row 1: water 0.5 | water 0
	//   row 2: water 0.0 | water 0.25
	g, err := liquid.NewGrid(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	set := func(col, row int, k liquid.Kind, f float64) {
		if err := g.Set(col, row, liquid.Cell{Kind: k, Fill: f}); err != nil {
			t.Fatal(err)
		}
	}
	set(0, 0, liquid.Water, 0.5)
	set(1, 0, liquid.Solid, 0)
	set(0, 1, liquid.Water, 0.5)
	set(1, 2, liquid.Water, 0.25)

	got := AppendCellShapes(nil, g.Cells(), g.Columns(), testStyle())
	want := []Shape{
		{Rect: Rect{X: 0, Y: 5, W: 10, H: 5}, Color: testWater},
		{Rect: Rect{X: 10, Y: 0, W: 10, H: 10}, Color: testSolid},
		// 上方有水，画满整格
		{Rect: Rect{X: 0, Y: 10, W: 10, H: 10}, Color: testWater},
		{Rect: Rect{X: 10, Y: 27.5, W: 10, H: 2.5}, Color: testWater},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AppendCellShapes() mismatch (-want +got):\n%s", diff)
	}
}

func TestGridLines(t *testing.T) {
	got := GridLines(3, 2, 10, 2)
	want := []Rect{
		{X: 0, Y: 0, W: 2, H: 20},
		{X: 10, Y: 0, W: 2, H: 20},
		{X: 20, Y: 0, W: 2, H: 20},
		{X: 0, Y: 0, W: 30, H: 2},
		{X: 0, Y: 10, W: 30, H: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GridLines() mismatch (-want +got):\n%s", diff)
	}

	if lines := GridLines(3, 2, 10, 0); lines != nil {
		t.Errorf("zero line width should produce no lines, got %d", len(lines))
	}
}

func TestStyleFromConfig(t *testing.T) {
	cfg := config.DefaultSimulationConfig()
	s := StyleFromConfig(cfg)
	if s.CellSize != 10 || s.LineWidth != 2 || s.FountainThreshold != 0.015 {
		t.Errorf("StyleFromConfig() = %+v", s)
	}
	if s.Water != testWater {
		t.Errorf("water color = %v, want %v", s.Water, testWater)
	}
}

func TestRendererDraw(t *testing.T) {
	g, err := liquid.NewGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	_ = g.Set(1, 3, liquid.Cell{Kind: liquid.Solid})
	_ = g.Set(2, 3, liquid.Cell{Kind: liquid.Water, Fill: 1})

	r := NewRenderer(testStyle())
	screen := ebiten.NewImage(40, 40)
	// 连续两帧复用缓冲
	r.Draw(screen, g, true)
	r.Draw(screen, g, false)
	r.Draw(screen, nil, false)

	if r.Style().CellSize != 10 {
		t.Errorf("Style().CellSize = %d", r.Style().CellSize)
	}
	if len(r.shapes) != 2 {
		t.Errorf("shapes = %d, want 2", len(r.shapes))
	}
}
