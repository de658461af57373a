package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/liquidsim/pkg/app"
	"github.com/decker502/liquidsim/pkg/config"
	"github.com/decker502/liquidsim/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configPath    = flag.String("config", "", "模拟配置文件路径（默认使用内置 data/liquid.yaml）")
	scenariosPath = flag.String("scenarios", "", "场景预设文件路径（默认使用内置 data/scenarios.yaml）")
	scenario      = flag.String("scenario", "", "启动时加载的场景预设名称（默认空白网格）")
	listScenarios = flag.Bool("list", false, "列出可用的场景预设后退出")
	verbose       = flag.Bool("verbose", false, "显示详细日志")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	simCfg, scenarios, err := loadConfig()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	if *listScenarios {
		for _, sc := range scenarios.Scenarios {
			fmt.Printf("%-16s %s\n", sc.Name, sc.Description)
		}
		return
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Simulation: simCfg,
		Scenarios:  scenarios,
		Scenario:   *scenario,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(simCfg.Window.Width, simCfg.Window.Height)
	ebiten.SetWindowTitle(simCfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(simCfg.Window.TPS)
	// 关闭窗口时由 App.Update 保存设置后返回 ebiten.Termination
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

func loadConfig() (*config.SimulationConfig, *config.ScenarioFile, error) {
	data, err := embedded.ReadFileOrEmbedded(*configPath, embedded.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	simCfg, err := config.ParseSimulationConfig(data)
	if err != nil {
		return nil, nil, err
	}

	data, err = embedded.ReadFileOrEmbedded(*scenariosPath, embedded.ScenariosPath)
	if err != nil {
		return nil, nil, err
	}
	scenarios, err := config.ParseScenarioFile(data)
	if err != nil {
		return nil, nil, err
	}
	return simCfg, scenarios, nil
}
