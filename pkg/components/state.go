package components

import (
	"math"

	"github.com/decker502/squareline/pkg/utils"
)

// StateComponent 单个节点的动画进度
//
// 静止时 Dir == 0，且 Scale == PrevScale，取值为 0 或 1。
// 动画中 Dir 为 1（朝 1 前进）或 -1（朝 0 回退），Scale 在 tick 中逐步变化，
// 越过目标端点后会被钳制回端点。
type StateComponent struct {
	Scale     float64 // 当前进度
	Dir       int     // 方向：-1, 0, 1
	PrevScale float64 // 上一次停稳时的进度（0 或 1）

	// Lines 旋转线数量，决定后半程的步长（1/Lines）
	Lines int
}

// NewStateComponent 创建一个停在 0 的进度状态
func NewStateComponent(lines int) *StateComponent {
	return &StateComponent{Lines: lines}
}

// Update 推进一个 tick
// 越过目标端点时钳制并复位方向，返回 true 表示本次已停稳
func (s *StateComponent) Update() bool {
	if s.Dir == 0 {
		return false
	}
	s.Scale += utils.UpdateValue(s.Scale, s.Dir, 1, float64(s.Lines))
	if math.Abs(s.Scale-s.PrevScale) > 1 {
		s.Scale = s.PrevScale + float64(s.Dir)
		s.Dir = 0
		s.PrevScale = s.Scale
		return true
	}
	return false
}

// StartUpdating 从静止状态开始动画
// PrevScale 为 0 时朝 1 前进，为 1 时朝 0 回退。
// 已在动画中时不做任何事并返回 false。
func (s *StateComponent) StartUpdating() bool {
	if s.Dir != 0 {
		return false
	}
	s.Dir = 1 - 2*int(s.PrevScale)
	return true
}

// IsIdle 是否处于静止状态
func (s *StateComponent) IsIdle() bool {
	return s.Dir == 0
}

// Target 当前动画的目标端点；静止时返回停留的端点
func (s *StateComponent) Target() float64 {
	return s.PrevScale + float64(s.Dir)
}
