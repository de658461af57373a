//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 触摸拖动等同于按住鼠标绘制；移动端没有键盘，画笔保持配置中的初始类型。
//
//	# Android
//	cp -r data mobile/data && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.liquidsim -o build/android/liquidsim.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	cp -r data mobile/data && ebitenmobile bind -target ios -tags mobile -o build/ios/LiquidSim.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/liquidsim/pkg/app"
	"github.com/decker502/liquidsim/pkg/config"
	"github.com/decker502/liquidsim/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)

	data, err := embedded.ReadFile(embedded.ConfigPath)
	if err != nil {
		log.Fatalf("配置读取失败: %v", err)
	}
	simCfg, err := config.ParseSimulationConfig(data)
	if err != nil {
		log.Fatalf("配置解析失败: %v", err)
	}

	var scenarios *config.ScenarioFile
	if data, err := embedded.ReadFile(embedded.ScenariosPath); err == nil {
		if scenarios, err = config.ParseScenarioFile(data); err != nil {
			log.Printf("[Mobile] 场景预设解析失败: %v", err)
		}
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    true,
		Simulation: simCfg,
		Scenarios:  scenarios,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
