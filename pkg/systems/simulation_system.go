package systems

import (
	"log"

	"github.com/decker502/liquidsim/pkg/components"
	"github.com/decker502/liquidsim/pkg/ecs"
	"github.com/decker502/liquidsim/pkg/game"
	"github.com/decker502/liquidsim/pkg/liquid"
)

// Stepper 执行一个完整的模拟步骤，由 *liquid.Simulator 实现
type Stepper interface {
	Step(g *liquid.Grid) (liquid.StepStats, error)
	Ticks() uint64
}

// SimulationSystem 按固定步长推进液体网格
//
// 运行时每帧由 FixedStep 决定执行几步；暂停时只执行 N 键请求的单步。
// 步骤失败（例如检测到负数转移量）时记录错误并暂停，网格保持失败前的状态。
type SimulationSystem struct {
	entityManager *ecs.EntityManager
	simulator     Stepper
	ticker        *game.FixedStep
}

// NewSimulationSystem 创建模拟系统
func NewSimulationSystem(em *ecs.EntityManager, sim Stepper, ticker *game.FixedStep) *SimulationSystem {
	return &SimulationSystem{
		entityManager: em,
		simulator:     sim,
		ticker:        ticker,
	}
}

// Update 推进模拟，返回本帧实际执行的步骤数
func (s *SimulationSystem) Update(deltaTime float64) int {
	gridID, gridComp, ok := ecs.First[*components.LiquidGridComponent](s.entityManager)
	if !ok || gridComp.Grid == nil {
		return 0
	}
	state, ok := ecs.GetComponent[*components.SimulationStateComponent](s.entityManager, gridID)
	if !ok {
		return 0
	}

	var steps int
	if state.Paused {
		steps = state.StepRequests
		state.StepRequests = 0
		// 恢复运行时不追赶暂停期间的时间
		s.ticker.Reset()
	} else {
		steps = s.ticker.Advance(game.Seconds(deltaTime))
	}

	done := 0
	for ; done < steps; done++ {
		stats, err := s.simulator.Step(gridComp.Grid)
		if err != nil {
			log.Printf("[SimulationSystem] step %d failed, pausing: %v", s.simulator.Ticks()+1, err)
			state.Err = err
			state.Paused = true
			break
		}
		state.LastStats = stats
	}
	return done
}
