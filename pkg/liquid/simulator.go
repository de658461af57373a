package liquid

import "fmt"

// StepStats 单次模拟步骤的统计
type StepStats struct {
	Tick uint64

	// 各遍历转移的总量
	FlowedDown  float64
	Equalized   float64
	Pressurized float64

	// 步骤结束后的网格统计
	Measure Measurement
}

// Moved 返回本步骤三个遍历转移的总量
func (s StepStats) Moved() float64 {
	return s.FlowedDown + s.Equalized + s.Pressurized
}

// Settled 本步骤的总转移量是否不超过 eps
func (s StepStats) Settled(eps float64) bool {
	return s.Moved() <= eps
}

// Simulator 模拟步骤编排器
//
// 每次 Step 按固定顺序执行 FlowDown -> Equalize -> Pressurize，
// 每个遍历读取上一个遍历的结果。顺序不可调换：先执行压力遍历会让同一帧的超压
// 在向下排出之前先向上传播，沉降表现会明显不同。
//
// Simulator 持有两块暂存缓冲区，所有遍历成功后才把结果提交回调用方的网格。
type Simulator struct {
	params Params
	front  *Grid
	back   *Grid
	ticks  uint64
}

// NewSimulator 创建模拟器
func NewSimulator(p Params) (*Simulator, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation params: %w", err)
	}
	return &Simulator{params: p}, nil
}

// Params 返回当前模拟参数
func (s *Simulator) Params() Params {
	return s.params
}

// Ticks 返回已成功执行的步骤数
func (s *Simulator) Ticks() uint64 {
	return s.ticks
}

// ensureBuffers 按网格尺寸（重新）分配暂存缓冲区
func (s *Simulator) ensureBuffers(g *Grid) {
	if s.front != nil && s.front.SameShape(g) {
		return
	}
	s.front = g.Clone()
	s.back = g.Clone()
}

// Step 对 g 执行一次完整的模拟步骤
//
// 任一遍历失败时 g 保持不变，并返回带遍历名称的错误。
func (s *Simulator) Step(g *Grid) (StepStats, error) {
	if g == nil {
		return StepStats{}, fmt.Errorf("step: %w: nil grid", ErrDimensionMismatch)
	}
	s.ensureBuffers(g)

	var stats StepStats
	var err error

	// g -> back -> front -> back
	if stats.FlowedDown, err = FlowDown(g, s.back, s.params); err != nil {
		return StepStats{}, err
	}
	if stats.Equalized, err = Equalize(s.back, s.front, s.params); err != nil {
		return StepStats{}, err
	}
	if stats.Pressurized, err = Pressurize(s.front, s.back, s.params); err != nil {
		return StepStats{}, err
	}
	if err := g.CopyFrom(s.back); err != nil {
		return StepStats{}, err
	}

	s.ticks++
	stats.Tick = s.ticks
	stats.Measure = Measure(g)
	return stats, nil
}

// Run 连续执行 n 次步骤，onStep 可为 nil
//
// 返回最后一次步骤的统计。
func (s *Simulator) Run(g *Grid, n int, onStep func(StepStats)) (StepStats, error) {
	var last StepStats
	for i := 0; i < n; i++ {
		stats, err := s.Step(g)
		if err != nil {
			return last, fmt.Errorf("step %d: %w", i+1, err)
		}
		if onStep != nil {
			onStep(stats)
		}
		last = stats
	}
	return last, nil
}

// Step 使用默认参数对 g 执行一次模拟步骤
func Step(g *Grid) error {
	sim, err := NewSimulator(DefaultParams())
	if err != nil {
		return err
	}
	_, err = sim.Step(g)
	return err
}
