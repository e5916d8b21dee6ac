package graphics

import (
	"image/color"
)

// Segment 一次描边产生的线段（设备坐标）
type Segment struct {
	X0, Y0, X1, Y1 float64
	Color          color.Color
	Width          float64
	Cap            LineCap
}

// Rect 一次矩形填充（设备坐标，变换后的左上角和尺寸）
type Rect struct {
	X, Y, W, H float64
	Color      color.Color
}

// RecordingSurface 不绘制任何像素，只记录调用
//
// Calls 按顺序记录方法名；Segments/Rects 记录描边和填充的设备坐标结果。
// 用于测试和无窗口的轨迹工具。
type RecordingSurface struct {
	Calls    []string
	Segments []Segment
	Rects    []Rect

	state    stateStack
	maxDepth int
}

// NewRecordingSurface 创建记录表面
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{state: newStateStack()}
}

func (r *RecordingSurface) record(name string) {
	r.Calls = append(r.Calls, name)
}

func (r *RecordingSurface) Save() {
	r.record("Save")
	r.state.save()
	if d := r.state.depth(); d > r.maxDepth {
		r.maxDepth = d
	}
}

func (r *RecordingSurface) Restore() {
	r.record("Restore")
	r.state.restore()
}

func (r *RecordingSurface) Translate(x, y float64) {
	r.record("Translate")
	r.state.translate(x, y)
}

func (r *RecordingSurface) Rotate(rad float64) {
	r.record("Rotate")
	r.state.rotate(rad)
}

func (r *RecordingSurface) BeginPath() {
	r.record("BeginPath")
	r.state.beginPath()
}

func (r *RecordingSurface) MoveTo(x, y float64) {
	r.record("MoveTo")
	r.state.moveTo(x, y)
}

func (r *RecordingSurface) LineTo(x, y float64) {
	r.record("LineTo")
	r.state.lineTo(x, y)
}

func (r *RecordingSurface) Stroke() {
	r.record("Stroke")
	st := r.state.cur
	for _, seg := range r.state.segments() {
		r.Segments = append(r.Segments, Segment{
			X0: seg[0].x, Y0: seg[0].y,
			X1: seg[1].x, Y1: seg[1].y,
			Color: st.strokeColor,
			Width: st.lineWidth,
			Cap:   st.lineCap,
		})
	}
}

func (r *RecordingSurface) SetFillColor(clr color.Color) {
	r.record("SetFillColor")
	r.state.cur.fillColor = clr
}

func (r *RecordingSurface) FillRect(x, y, w, h float64) {
	r.record("FillRect")
	p := r.state.apply(x, y)
	r.Rects = append(r.Rects, Rect{X: p.x, Y: p.y, W: w, H: h, Color: r.state.cur.fillColor})
}

func (r *RecordingSurface) SetStrokeColor(clr color.Color) {
	r.record("SetStrokeColor")
	r.state.cur.strokeColor = clr
}

func (r *RecordingSurface) SetLineWidth(width float64) {
	r.record("SetLineWidth")
	r.state.cur.lineWidth = width
}

func (r *RecordingSurface) SetLineCap(lineCap LineCap) {
	r.record("SetLineCap")
	r.state.cur.lineCap = lineCap
}

// Depth 当前 Save 栈深度，成对调用后应为 0
func (r *RecordingSurface) Depth() int {
	return r.state.depth()
}

// MaxDepth 记录过程中出现的最大 Save 栈深度
func (r *RecordingSurface) MaxDepth() int {
	return r.maxDepth
}

// Count 统计某个方法被调用的次数
func (r *RecordingSurface) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c == name {
			n++
		}
	}
	return n
}

// Clear 清空记录和状态
func (r *RecordingSurface) Clear() {
	r.Calls = r.Calls[:0]
	r.Segments = r.Segments[:0]
	r.Rects = r.Rects[:0]
	r.state = newStateStack()
	r.maxDepth = 0
}
