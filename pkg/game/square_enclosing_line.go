package game

import (
	"github.com/decker502/squareline/pkg/components"
	"github.com/decker502/squareline/pkg/graphics"
)

// StepResult 一个 tick 的结果
type StepResult struct {
	// Settled 当前节点是否在本 tick 停稳
	Settled bool
	// Node 本 tick 推进的节点下标
	Node int
	// Cursor 本 tick 之后的游标位置
	Cursor int
	// Flipped 是否在链端翻转了扫描方向
	Flipped bool
}

// SquareEnclosingLine 节点链和动画游标
//
// 游标指向当前允许动画的节点。节点停稳后游标沿扫描方向移动一步；
// 到达链端时扫描方向翻转，游标停在原节点，下一次点击让该节点反向动画。
// 整体表现为 0→1→2→3→4，4→3→2→1→0 的往返扫描。
type SquareEnclosingLine struct {
	nodes  []*components.NodeComponent
	layout graphics.Layout

	curr int
	dir  int
}

// NewSquareEnclosingLine 按布局中的节点数构建节点链，所有节点停在 0
func NewSquareEnclosingLine(layout graphics.Layout) *SquareEnclosingLine {
	nodes := make([]*components.NodeComponent, layout.Nodes)
	for i := range nodes {
		nodes[i] = components.NewNodeComponent(i, layout.Lines)
	}
	return &SquareEnclosingLine{
		nodes:  nodes,
		layout: layout,
		dir:    1,
	}
}

// Draw 按下标顺序绘制所有节点，与游标位置无关
func (sel *SquareEnclosingLine) Draw(s graphics.Surface) {
	for _, n := range sel.nodes {
		n.Draw(s, sel.layout)
	}
}

// StartUpdating 启动游标节点的动画，返回是否真正启动
func (sel *SquareEnclosingLine) StartUpdating() bool {
	if len(sel.nodes) == 0 {
		return false
	}
	return sel.nodes[sel.curr].StartUpdating()
}

// Update 推进游标节点一个 tick；停稳时移动游标或在链端翻转方向
func (sel *SquareEnclosingLine) Update() StepResult {
	res := StepResult{Node: sel.curr, Cursor: sel.curr}
	if len(sel.nodes) == 0 {
		return res
	}

	node := sel.nodes[sel.curr]
	if !node.Update() {
		return res
	}

	res.Settled = true
	next, boundary := node.Next(sel.dir, len(sel.nodes))
	if boundary {
		sel.dir = -sel.dir
		res.Flipped = true
	}
	sel.curr = next
	res.Cursor = next
	return res
}

// Cursor 当前游标位置
func (sel *SquareEnclosingLine) Cursor() int {
	return sel.curr
}

// Dir 当前扫描方向（1 或 -1）
func (sel *SquareEnclosingLine) Dir() int {
	return sel.dir
}

// Len 节点数量
func (sel *SquareEnclosingLine) Len() int {
	return len(sel.nodes)
}

// Node 返回第 i 个节点，越界时返回 nil
func (sel *SquareEnclosingLine) Node(i int) *components.NodeComponent {
	if i < 0 || i >= len(sel.nodes) {
		return nil
	}
	return sel.nodes[i]
}

// IsAnimating 游标节点是否正在动画
func (sel *SquareEnclosingLine) IsAnimating() bool {
	if len(sel.nodes) == 0 {
		return false
	}
	return !sel.nodes[sel.curr].State.IsIdle()
}

// Snapshot 返回所有节点当前进度的副本
func (sel *SquareEnclosingLine) Snapshot() []float64 {
	scales := make([]float64, len(sel.nodes))
	for i, n := range sel.nodes {
		scales[i] = n.State.Scale
	}
	return scales
}
