package game

import "time"

// FixedStep 固定步长计时器
//
// 渲染帧率由 ebiten 的 TPS 决定，模拟步骤按固定间隔推进：
// 每帧把经过的时间累加起来，满一个间隔就执行一步。
// 单帧最多执行 maxSteps 步，超出部分被丢弃，避免卡顿后连续追赶。
type FixedStep struct {
	interval time.Duration
	maxSteps int
	acc      time.Duration
}

// NewFixedStep 创建计时器
//
// interval 为 0 时每帧执行一步；maxSteps <= 0 表示不限制。
func NewFixedStep(interval time.Duration, maxSteps int) *FixedStep {
	return &FixedStep{interval: interval, maxSteps: maxSteps}
}

// Interval 返回步长
func (f *FixedStep) Interval() time.Duration {
	return f.interval
}

// Advance 累加 dt 并返回本帧应执行的步骤数
func (f *FixedStep) Advance(dt time.Duration) int {
	if f.interval <= 0 {
		return 1
	}
	if dt > 0 {
		f.acc += dt
	}

	steps := int(f.acc / f.interval)
	f.acc -= time.Duration(steps) * f.interval

	if f.maxSteps > 0 && steps > f.maxSteps {
		steps = f.maxSteps
		// 丢弃积压，只保留不足一步的余量
		f.acc %= f.interval
	}
	return steps
}

// Reset 清空累计时间（例如恢复暂停时）
func (f *FixedStep) Reset() {
	f.acc = 0
}

// Seconds 把秒数转换为 time.Duration（Scene.Update 使用秒）
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
