package components

import "github.com/decker502/liquidsim/pkg/liquid"

// SimulationStateComponent 模拟运行状态（附加在网格实体上）
type SimulationStateComponent struct {
	Paused bool
	// StepRequests 暂停时请求的单步次数（N 键）
	StepRequests int
	// LastStats 最近一次模拟步骤的统计
	LastStats liquid.StepStats
	// Err 最近一次模拟失败的原因，非 nil 时模拟保持暂停
	Err error
}
