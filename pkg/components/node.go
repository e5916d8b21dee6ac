package components

import (
	"github.com/decker502/squareline/pkg/graphics"
)

// NodeComponent 节点链中的一个节点
//
// 节点链长度固定，前驱和后继由下标推导（Index-1, Index+1），
// 不保存相互引用。每个节点独占自己的进度状态。
type NodeComponent struct {
	Index int
	State *StateComponent
}

// NewNodeComponent 创建第 i 个节点，进度停在 0
func NewNodeComponent(i, lines int) *NodeComponent {
	return &NodeComponent{
		Index: i,
		State: NewStateComponent(lines),
	}
}

// Draw 以当前进度绘制本节点
func (n *NodeComponent) Draw(s graphics.Surface, l graphics.Layout) {
	graphics.DrawNode(s, l, n.Index, n.State.Scale)
}

// Update 推进本节点一个 tick，返回是否停稳
func (n *NodeComponent) Update() bool {
	return n.State.Update()
}

// StartUpdating 启动本节点的动画，返回是否真正启动
func (n *NodeComponent) StartUpdating() bool {
	return n.State.StartUpdating()
}

// Next 返回 dir 方向上的相邻节点下标
//
// dir 为 -1 取前驱，为 1 取后继。相邻节点不存在（到达链端）时
// 返回自身下标并令 boundary 为 true，由调用方翻转扫描方向。
func (n *NodeComponent) Next(dir, count int) (next int, boundary bool) {
	if dir == 0 {
		return n.Index, false
	}
	j := n.Index + dir
	if j < 0 || j >= count {
		return n.Index, true
	}
	return j, false
}
