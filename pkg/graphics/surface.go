// Package graphics 提供 2D 绘图表面抽象和节点图形的绘制例程
//
// 动画逻辑只通过 Surface 接口绘图：变换栈（Save/Restore/Translate/Rotate）、
// 路径（BeginPath/MoveTo/LineTo/Stroke）、矩形填充和描边样式。
// 运行时使用 EbitenSurface 绘制到 *ebiten.Image，测试中使用 RecordingSurface
// 记录调用序列。
package graphics

import "image/color"

// LineCap 线段端点样式
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// String 返回端点样式名称
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Surface 2D 绘图表面
//
// 语义与 HTML canvas 2D 上下文一致：Translate/Rotate 作用于之后绘制的
// 路径，Save/Restore 成对保存和恢复变换及样式。
type Surface interface {
	Save()
	Restore()
	Translate(x, y float64)
	// Rotate 按弧度旋转，正值为顺时针（y 轴向下）
	Rotate(rad float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()

	SetFillColor(clr color.Color)
	FillRect(x, y, w, h float64)

	SetStrokeColor(clr color.Color)
	SetLineWidth(width float64)
	SetLineCap(lineCap LineCap)
}
