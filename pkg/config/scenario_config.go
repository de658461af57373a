package config

import (
	"fmt"
	"os"

	"github.com/decker502/liquidsim/pkg/liquid"
	"gopkg.in/yaml.v3"
)

// ScenarioFile 场景预设文件
//
// 配置文件位置: data/scenarios.yaml
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario 一个命名的初始布局
//
// Columns/Rows 为 0 时使用调用方提供的网格尺寸（例如窗口网格）。
type Scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Columns     int      `yaml:"columns"`
	Rows        int      `yaml:"rows"`
	Steps       int      `yaml:"steps"` // 无头验证时运行的步骤数
	Regions     []Region `yaml:"regions"`
}

// Region 矩形区域，区域内所有格子被写入同一个格子类型和填充量
//
// 后出现的区域覆盖先出现的区域。
type Region struct {
	Kind   liquid.Kind `yaml:"kind"`
	Col    int         `yaml:"col"`
	Row    int         `yaml:"row"`
	Width  int         `yaml:"width"`  // 默认 1
	Height int         `yaml:"height"` // 默认 1
	Fill   float64     `yaml:"fill"`
}

// LoadScenarioFile 加载场景预设文件
func LoadScenarioFile(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenarioFile(data)
}

// ParseScenarioFile 从 YAML 数据解析场景预设
func ParseScenarioFile(data []byte) (*ScenarioFile, error) {
	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	seen := make(map[string]bool, len(file.Scenarios))
	for i := range file.Scenarios {
		sc := &file.Scenarios[i]
		sc.applyDefaults()
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %d (%q): %w", i, sc.Name, err)
		}
		if seen[sc.Name] {
			return nil, fmt.Errorf("duplicate scenario name %q", sc.Name)
		}
		seen[sc.Name] = true
	}
	return &file, nil
}

// Get 按名称查找场景
func (f *ScenarioFile) Get(name string) (*Scenario, bool) {
	for i := range f.Scenarios {
		if f.Scenarios[i].Name == name {
			return &f.Scenarios[i], true
		}
	}
	return nil, false
}

// Names 返回所有场景名称（按文件顺序）
func (f *ScenarioFile) Names() []string {
	names := make([]string, 0, len(f.Scenarios))
	for _, sc := range f.Scenarios {
		names = append(names, sc.Name)
	}
	return names
}

func (s *Scenario) applyDefaults() {
	if s.Steps == 0 {
		s.Steps = 300
	}
	for i := range s.Regions {
		if s.Regions[i].Width == 0 {
			s.Regions[i].Width = 1
		}
		if s.Regions[i].Height == 0 {
			s.Regions[i].Height = 1
		}
	}
}

// Validate 验证场景有效性
//
// 区域是否越界要等到网格尺寸确定后才能检查（见 Apply）。
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Columns < 0 || s.Rows < 0 {
		return fmt.Errorf("grid size must not be negative, got %dx%d", s.Columns, s.Rows)
	}
	if s.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", s.Steps)
	}
	for i, r := range s.Regions {
		if r.Width <= 0 || r.Height <= 0 {
			return fmt.Errorf("region %d: size must be positive, got %dx%d", i, r.Width, r.Height)
		}
		if r.Fill < 0 {
			return fmt.Errorf("region %d: fill must not be negative, got %g", i, r.Fill)
		}
	}
	return nil
}

// NewGrid 按场景尺寸创建网格并写入所有区域
//
// 场景未指定尺寸时使用 defaultColumns x defaultRows。
func (s *Scenario) NewGrid(defaultColumns, defaultRows int) (*liquid.Grid, error) {
	columns, rows := s.Columns, s.Rows
	if columns == 0 {
		columns = defaultColumns
	}
	if rows == 0 {
		rows = defaultRows
	}

	g, err := liquid.NewGrid(columns, rows)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	if err := s.Apply(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Apply 把场景中的区域写入已有网格
//
// 任一格子越界时返回包装了 liquid.ErrIndexOutOfRange 的错误。
func (s *Scenario) Apply(g *liquid.Grid) error {
	for i, r := range s.Regions {
		for row := r.Row; row < r.Row+r.Height; row++ {
			for col := r.Col; col < r.Col+r.Width; col++ {
				if err := g.Set(col, row, liquid.Cell{Kind: r.Kind, Fill: r.Fill}); err != nil {
					return fmt.Errorf("scenario %q region %d: %w", s.Name, i, err)
				}
			}
		}
	}
	return nil
}
