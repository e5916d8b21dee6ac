package graphics

import (
	"image/color"
	"math"

	"github.com/decker502/squareline/pkg/utils"
)

// Layout 节点图形的几何与样式参数
// 全部尺寸由表面宽高和节点数推导
type Layout struct {
	Width  float64 // 表面宽度
	Height float64 // 表面高度

	Nodes int // 节点数量
	Lines int // 每个节点的旋转线数量

	StrokeFactor float64 // 线宽 = min(Width, Height) / StrokeFactor
	SizeFactor   float64 // 半边长 = 节点间距 / SizeFactor

	ForeColor color.Color
	BackColor color.Color
}

// Gap 相邻节点的垂直间距
func (l Layout) Gap() float64 {
	return l.Height / float64(l.Nodes+1)
}

// Size 节点图形的半边长
func (l Layout) Size() float64 {
	return l.Gap() / l.SizeFactor
}

// LineWidth 描边宽度
func (l Layout) LineWidth() float64 {
	return math.Min(l.Width, l.Height) / l.StrokeFactor
}

// DrawBackground 用背景色填充整个表面
func DrawBackground(s Surface, l Layout) {
	s.SetFillColor(l.BackColor)
	s.FillRect(0, 0, l.Width, l.Height)
}

// DrawNode 绘制第 i 个节点
//
// 前半程（sc1）移动线从左侧滑入到节点正上方；
// 后半程（sc2）两条旋转线依次从水平转到竖直，与静止线一起围成正方形。
func DrawNode(s Surface, l Layout, i int, scale float64) {
	gap := l.Gap()
	size := l.Size()
	sc1 := utils.DivideScale(scale, 0, 2)
	sc2 := utils.DivideScale(scale, 1, 2)

	s.SetStrokeColor(l.ForeColor)
	s.SetLineWidth(l.LineWidth())
	s.SetLineCap(LineCapRound)

	s.Save()
	s.Translate(l.Width/2, gap*float64(i+1))
	drawMovingLine(s, l, size, sc1)
	drawStaticLine(s, size)
	for j := 0; j < l.Lines; j++ {
		drawRotatingLine(s, j, size, 90*utils.DivideScale(sc2, j, l.Lines))
	}
	s.Restore()
}

// drawMovingLine 顶边：scale 为 0 时位于画面左侧外，为 1 时到达节点上方
func drawMovingLine(s Surface, l Layout, size, scale float64) {
	s.Save()
	s.Translate(-(l.Width/2+size)*(1-scale), -size)
	s.BeginPath()
	s.MoveTo(-size, 0)
	s.LineTo(size, 0)
	s.Stroke()
	s.Restore()
}

// drawStaticLine 底边
func drawStaticLine(s Surface, size float64) {
	s.BeginPath()
	s.MoveTo(-size, size)
	s.LineTo(size, size)
	s.Stroke()
}

// drawRotatingLine 侧边：初始时从底边端点沿水平方向向外伸出，
// 以该端点为轴向上翻折 deg 度，90 度时竖直立在底边两端
func drawRotatingLine(s Surface, i int, size, deg float64) {
	sf := float64(1 - 2*i)
	s.Save()
	s.Translate(size*sf, size)
	s.Rotate(-(sf * deg) * math.Pi / 180)
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(2*size*sf, 0)
	s.Stroke()
	s.Restore()
}
