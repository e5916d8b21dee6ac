package game

import (
	"time"
)

// DefaultTickInterval 动画 tick 的默认周期
const DefaultTickInterval = 50 * time.Millisecond

// Animator 固定周期的 tick 源
//
// Animator 本身不持有计时器，而是由调用方通过 Advance 喂入流逝时间：
// 运行时每帧传入 1/TPS 秒，测试中直接传入任意时长或调用 Tick。
// 同一时间最多只有一个周期源处于运行状态。
type Animator struct {
	interval time.Duration
	running  bool
	elapsed  time.Duration // 距上一个 tick 已累计的时间
	ticks    uint64        // 自创建以来派发的 tick 总数
}

// NewAnimator 创建周期为 interval 的 Animator，interval <= 0 时使用默认周期
func NewAnimator(interval time.Duration) *Animator {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Animator{interval: interval}
}

// Start 开始派发 tick，返回是否从停止切换到运行
// 已在运行时不做任何事；每次启动都从一个完整周期开始计时
func (a *Animator) Start() bool {
	if a.running {
		return false
	}
	a.running = true
	a.elapsed = 0
	return true
}

// Stop 停止派发 tick，返回是否从运行切换到停止
func (a *Animator) Stop() bool {
	if !a.running {
		return false
	}
	a.running = false
	a.elapsed = 0
	return true
}

// IsRunning 是否正在派发 tick
func (a *Animator) IsRunning() bool {
	return a.running
}

// Interval 返回 tick 周期
func (a *Animator) Interval() time.Duration {
	return a.interval
}

// Ticks 返回已派发的 tick 总数
func (a *Animator) Ticks() uint64 {
	return a.ticks
}

// Advance 喂入流逝时间，返回此刻到期的 tick 数
// 停止状态下时间不累计，返回 0
func (a *Animator) Advance(dt time.Duration) int {
	if !a.running || dt <= 0 {
		return 0
	}
	a.elapsed += dt
	n := int(a.elapsed / a.interval)
	a.elapsed -= time.Duration(n) * a.interval
	a.ticks += uint64(n)
	return n
}

// Tick 立即派发一个 tick（不等待周期），停止状态下返回 false
func (a *Animator) Tick() bool {
	if !a.running {
		return false
	}
	a.ticks++
	return true
}
