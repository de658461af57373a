package config

import (
	"fmt"
	"os"
	"time"

	"github.com/decker502/liquidsim/pkg/liquid"
	"gopkg.in/yaml.v3"
)

// SimulationConfig 液体模拟的完整配置
//
// 配置文件位置: data/liquid.yaml（默认嵌入到程序中，可通过 -config 覆盖）
type SimulationConfig struct {
	Window     WindowConfig  `yaml:"window"`
	Grid       GridConfig    `yaml:"grid"`
	Simulation PhysicsConfig `yaml:"simulation"`
	Render     RenderConfig  `yaml:"render"`
	Editor     EditorConfig  `yaml:"editor"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"` // ebiten 目标 TPS
}

// GridConfig 网格配置
type GridConfig struct {
	CellSize  int  `yaml:"cellSize"`  // 每个格子的像素边长
	LineWidth int  `yaml:"lineWidth"` // 网格线宽度
	ShowLines bool `yaml:"showLines"` // 是否默认显示网格线
}

// PhysicsConfig 模拟步骤参数
type PhysicsConfig struct {
	TransferSpeed     float64       `yaml:"transferSpeed"`     // 每步最大下落量
	HorizontalDamping float64       `yaml:"horizontalDamping"` // 水平均衡除数
	TickInterval      time.Duration `yaml:"tickInterval"`      // 模拟步骤间隔，如 "30ms"
	CheckTransfers    *bool         `yaml:"checkTransfers"`    // 负数转移量是否报错，默认 true
	MaxTicksPerFrame  int           `yaml:"maxTicksPerFrame"`  // 单帧最多补偿的步骤数
}

// RenderConfig 渲染配置
type RenderConfig struct {
	FountainThreshold float64      `yaml:"fountainThreshold"`
	Colors            ColorsConfig `yaml:"colors"`
}

// ColorsConfig 颜色配置
type ColorsConfig struct {
	Background HexColor `yaml:"background"`
	Water      HexColor `yaml:"water"`
	Solid      HexColor `yaml:"solid"`
	GridLine   HexColor `yaml:"gridLine"`
	HUD        HexColor `yaml:"hud"`
}

// EditorConfig 编辑器配置
type EditorConfig struct {
	InitialKind liquid.Kind `yaml:"initialKind"` // 初始画笔类型（"solid" 或 "water"）
}

// DefaultSimulationConfig 返回默认配置
func DefaultSimulationConfig() *SimulationConfig {
	cfg := &SimulationConfig{
		Editor: EditorConfig{InitialKind: liquid.Solid},
	}
	cfg.applyDefaults()
	return cfg
}

// LoadSimulationConfig 从文件加载配置
//
// 参数:
//   - path: 配置文件路径（如 "data/liquid.yaml"）
//
// 返回:
//   - *SimulationConfig: 已填充默认值并通过验证的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadSimulationConfig(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}
	return ParseSimulationConfig(data)
}

// ParseSimulationConfig 从 YAML 数据解析配置
//
// 未填写的字段使用默认值；editor.initialKind 未填写时为 solid。
func ParseSimulationConfig(data []byte) (*SimulationConfig, error) {
	cfg := SimulationConfig{
		Editor: EditorConfig{InitialKind: liquid.Solid},
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	return &cfg, nil
}

// applyDefaults 为零值字段设置默认值
func (c *SimulationConfig) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = DefaultWindowWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultWindowHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = DefaultWindowTitle
	}
	if c.Window.TPS == 0 {
		c.Window.TPS = DefaultTPS
	}
	if c.Grid.CellSize == 0 {
		c.Grid.CellSize = DefaultCellSize
	}
	if c.Grid.LineWidth == 0 {
		c.Grid.LineWidth = DefaultLineWidth
	}
	if c.Simulation.TransferSpeed == 0 {
		c.Simulation.TransferSpeed = liquid.DefaultTransferSpeed
	}
	if c.Simulation.HorizontalDamping == 0 {
		c.Simulation.HorizontalDamping = liquid.DefaultHorizontalDamping
	}
	if c.Simulation.TickInterval == 0 {
		c.Simulation.TickInterval = 30 * time.Millisecond
	}
	if c.Simulation.CheckTransfers == nil {
		check := true
		c.Simulation.CheckTransfers = &check
	}
	if c.Simulation.MaxTicksPerFrame == 0 {
		c.Simulation.MaxTicksPerFrame = 4
	}
	if c.Render.FountainThreshold == 0 {
		c.Render.FountainThreshold = DefaultFountainThreshold
	}

	// 颜色：零值（完全透明的黑色）视为未配置
	colors := &c.Render.Colors
	if colors.Background == (HexColor{}) {
		colors.Background = MustHexColor("#000000")
	}
	if colors.Water == (HexColor{}) {
		colors.Water = MustHexColor("#03A9F4")
	}
	if colors.Solid == (HexColor{}) {
		colors.Solid = MustHexColor("#FFFFFF")
	}
	if colors.GridLine == (HexColor{}) {
		colors.GridLine = MustHexColor("#201513")
	}
	if colors.HUD == (HexColor{}) {
		colors.HUD = MustHexColor("#000000A0")
	}
}

// Validate 验证配置有效性
//
// 检查内容：
//   - 窗口尺寸、TPS 与格子尺寸为正数
//   - 窗口至少容纳一个格子
//   - 模拟参数通过 liquid.Params.Validate
//   - 步骤间隔不为负
//   - 编辑器初始类型有效
func (c *SimulationConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be positive, got %d", c.Window.TPS)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("grid cellSize must be positive, got %d", c.Grid.CellSize)
	}
	if c.Grid.LineWidth < 0 {
		return fmt.Errorf("grid lineWidth must be >= 0, got %d", c.Grid.LineWidth)
	}
	if c.Columns() == 0 || c.Rows() == 0 {
		return fmt.Errorf("window %dx%d cannot fit a %dpx cell", c.Window.Width, c.Window.Height, c.Grid.CellSize)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if c.Simulation.TickInterval < 0 {
		return fmt.Errorf("simulation tickInterval must not be negative, got %s", c.Simulation.TickInterval)
	}
	if c.Simulation.MaxTicksPerFrame < 0 {
		return fmt.Errorf("simulation maxTicksPerFrame must be >= 0, got %d", c.Simulation.MaxTicksPerFrame)
	}
	if c.Render.FountainThreshold < 0 {
		return fmt.Errorf("render fountainThreshold must be >= 0, got %g", c.Render.FountainThreshold)
	}
	if c.Editor.InitialKind != liquid.Water && c.Editor.InitialKind != liquid.Solid {
		return fmt.Errorf("editor initialKind invalid: %d", int(c.Editor.InitialKind))
	}
	return nil
}

// Columns 网格列数 = 窗口宽度 / 格子尺寸
func (c *SimulationConfig) Columns() int {
	return c.Window.Width / c.Grid.CellSize
}

// Rows 网格行数 = 窗口高度 / 格子尺寸
func (c *SimulationConfig) Rows() int {
	return c.Window.Height / c.Grid.CellSize
}

// Params 转换为 liquid.Params
func (c *SimulationConfig) Params() liquid.Params {
	check := true
	if c.Simulation.CheckTransfers != nil {
		check = *c.Simulation.CheckTransfers
	}
	return liquid.Params{
		TransferSpeed:     c.Simulation.TransferSpeed,
		HorizontalDamping: c.Simulation.HorizontalDamping,
		CheckTransfers:    check,
	}
}
