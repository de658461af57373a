// verify_settling 无窗口运行一个场景预设，检查水量守恒和沉降速度
//
// 用法:
//
//	go run ./cmd/verify_settling -name column -steps 500 -plot settling.png
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"github.com/decker502/liquidsim/pkg/config"
	"github.com/decker502/liquidsim/pkg/liquid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	configPath    = flag.String("config", "data/liquid.yaml", "模拟配置文件路径")
	scenariosPath = flag.String("scenarios", "data/scenarios.yaml", "场景预设文件路径")
	name          = flag.String("name", "column", "场景预设名称")
	steps         = flag.Int("steps", 0, "运行步骤数（0 表示使用场景中的 steps）")
	eps           = flag.Float64("eps", 1e-4, "单步总转移量不超过该值时视为已沉降")
	plotPath      = flag.String("plot", "", "输出 PNG 曲线图路径（为空则不输出）")
	verbose       = flag.Bool("verbose", false, "逐步打印统计")
)

// report 一次运行的结果汇总
type report struct {
	Scenario     string
	Steps        int
	InitialTotal float64
	FinalTotal   float64
	MaxDrift     float64 // 运行期间总水量与初始值的最大偏差
	PeakFill     float64 // 运行期间单个格子出现过的最大填充量
	SettledTick  uint64  // 首次沉降的步骤，0 表示未沉降
}

func main() {
	flag.Parse()

	cfg, err := config.LoadSimulationConfig(*configPath)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	file, err := config.LoadScenarioFile(*scenariosPath)
	if err != nil {
		log.Fatalf("场景加载失败: %v", err)
	}
	sc, ok := file.Get(*name)
	if !ok {
		log.Fatalf("未知场景 %q，可用: %v", *name, file.Names())
	}

	n := *steps
	if n <= 0 {
		n = sc.Steps
	}

	history, rep, err := run(sc, cfg, n, *eps, *verbose)
	if err != nil {
		log.Fatalf("模拟失败: %v", err)
	}

	fmt.Printf("场景:       %s (%d 步)\n", rep.Scenario, rep.Steps)
	fmt.Printf("总水量:     %.6f -> %.6f (最大偏差 %.3g)\n", rep.InitialTotal, rep.FinalTotal, rep.MaxDrift)
	fmt.Printf("峰值填充:   %.4f\n", rep.PeakFill)
	if rep.SettledTick > 0 {
		fmt.Printf("沉降于:     第 %d 步 (eps=%g)\n", rep.SettledTick, *eps)
	} else {
		fmt.Printf("沉降于:     未沉降 (eps=%g)\n", *eps)
	}

	if *plotPath != "" {
		p, err := buildPlot(rep.Scenario, rep.InitialTotal, history)
		if err != nil {
			log.Fatalf("绘图失败: %v", err)
		}
		if err := p.Save(8*vg.Inch, 4*vg.Inch, *plotPath); err != nil {
			log.Fatalf("保存曲线图失败: %v", err)
		}
		fmt.Printf("曲线图:     %s\n", *plotPath)
	}

	if rep.MaxDrift > 1e-6 {
		fmt.Fprintln(os.Stderr, "水量不守恒")
		os.Exit(1)
	}
}

// run 按场景构建网格并执行 n 个步骤
//
// 场景未指定尺寸时使用配置中的窗口网格尺寸。
func run(sc *config.Scenario, cfg *config.SimulationConfig, n int, eps float64, verbose bool) ([]liquid.StepStats, report, error) {
	rep := report{Scenario: sc.Name, Steps: n}

	g, err := sc.NewGrid(cfg.Columns(), cfg.Rows())
	if err != nil {
		return nil, rep, err
	}
	sim, err := liquid.NewSimulator(cfg.Params())
	if err != nil {
		return nil, rep, err
	}

	initial := liquid.Measure(g)
	rep.InitialTotal = initial.TotalFill
	rep.FinalTotal = initial.TotalFill
	rep.PeakFill = initial.MaxFill

	history := make([]liquid.StepStats, 0, n)
	_, err = sim.Run(g, n, func(s liquid.StepStats) {
		history = append(history, s)
		rep.FinalTotal = s.Measure.TotalFill
		rep.MaxDrift = math.Max(rep.MaxDrift, math.Abs(s.Measure.TotalFill-rep.InitialTotal))
		rep.PeakFill = math.Max(rep.PeakFill, s.Measure.MaxFill)
		if rep.SettledTick == 0 && s.Settled(eps) {
			rep.SettledTick = s.Tick
		}
		if verbose {
			log.Printf("[Settling] tick=%d moved=%.5f total=%.6f max=%.4f",
				s.Tick, s.Moved(), s.Measure.TotalFill, s.Measure.MaxFill)
		}
	})
	return history, rep, err
}

// buildPlot 绘制每步转移量、峰值填充量和总水量偏差曲线
func buildPlot(title string, initialTotal float64, history []liquid.StepStats) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Settling - %s", title)
	p.X.Label.Text = "Tick"
	p.Y.Label.Text = "Fill"

	moved := make(plotter.XYs, 0, len(history))
	peak := make(plotter.XYs, 0, len(history))
	drift := make(plotter.XYs, 0, len(history))
	for _, s := range history {
		x := float64(s.Tick)
		moved = append(moved, plotter.XY{X: x, Y: s.Moved()})
		peak = append(peak, plotter.XY{X: x, Y: s.Measure.MaxFill})
		drift = append(drift, plotter.XY{X: x, Y: s.Measure.TotalFill - initialTotal})
	}

	series := []struct {
		label string
		pts   plotter.XYs
		color color.Color
	}{
		{"moved", moved, color.RGBA{R: 0x03, G: 0xA9, B: 0xF4, A: 0xFF}},
		{"max fill", peak, color.RGBA{R: 0xE9, G: 0x1E, B: 0x63, A: 0xFF}},
		{"total drift", drift, color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}},
	}
	for _, s := range series {
		if len(s.pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(s.pts)
		if err != nil {
			return nil, err
		}
		line.Color = s.color
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.label, line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}
