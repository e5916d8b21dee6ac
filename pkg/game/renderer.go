package game

import (
	"log"
	"time"

	"github.com/decker502/squareline/pkg/graphics"
)

// Renderer 组合节点链和 Animator
//
// 点击只负责启动游标节点并开始派发 tick；每个 tick 推进游标节点，
// 节点停稳后 Animator 立即停止，等待下一次点击。
type Renderer struct {
	sel      *SquareEnclosingLine
	animator *Animator
	layout   graphics.Layout

	// OnStep 每个 tick 之后调用（可为 nil）
	OnStep func(StepResult)
}

// NewRenderer 创建 Renderer
func NewRenderer(layout graphics.Layout, tickInterval time.Duration) *Renderer {
	return &Renderer{
		sel:      NewSquareEnclosingLine(layout),
		animator: NewAnimator(tickInterval),
		layout:   layout,
	}
}

// Render 绘制背景和全部节点
func (r *Renderer) Render(s graphics.Surface) {
	graphics.DrawBackground(s, r.layout)
	r.sel.Draw(s)
}

// HandleTap 处理一次点击，返回是否启动了新的动画
// 动画进行中的点击被忽略
func (r *Renderer) HandleTap() bool {
	if !r.sel.StartUpdating() {
		return false
	}
	r.animator.Start()
	node := r.sel.Node(r.sel.Cursor())
	log.Printf("[Renderer] 节点 %d 开始动画 (dir=%d)", node.Index, node.State.Dir)
	return true
}

// Update 喂入流逝时间并执行到期的 tick
// 同一帧内节点停稳后，剩余到期的 tick 被丢弃
func (r *Renderer) Update(dt time.Duration) {
	due := r.animator.Advance(dt)
	for i := 0; i < due && r.animator.IsRunning(); i++ {
		r.step()
	}
}

// Step 立即执行一个 tick，Animator 未运行时返回 false
func (r *Renderer) Step() (StepResult, bool) {
	if !r.animator.Tick() {
		return StepResult{}, false
	}
	return r.step(), true
}

func (r *Renderer) step() StepResult {
	res := r.sel.Update()
	if res.Settled {
		r.animator.Stop()
		log.Printf("[Renderer] 节点 %d 停稳, 游标 -> %d", res.Node, res.Cursor)
		if res.Flipped {
			log.Printf("[Renderer] 到达链端, 扫描方向 -> %d", r.sel.Dir())
		}
	}
	if r.OnStep != nil {
		r.OnStep(res)
	}
	return res
}

// IsAnimating 是否有节点正在动画
func (r *Renderer) IsAnimating() bool {
	return r.animator.IsRunning()
}

// Line 返回节点链
func (r *Renderer) Line() *SquareEnclosingLine {
	return r.sel
}

// Animator 返回 tick 源
func (r *Renderer) Animator() *Animator {
	return r.animator
}

// Layout 返回绘制布局
func (r *Renderer) Layout() graphics.Layout {
	return r.layout
}
