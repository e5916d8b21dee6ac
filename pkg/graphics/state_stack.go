package graphics

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawState 一层绘图状态：当前变换矩阵和描边/填充样式
type drawState struct {
	geoM        ebiten.GeoM
	strokeColor color.Color
	fillColor   color.Color
	lineWidth   float64
	lineCap     LineCap
}

func defaultDrawState() drawState {
	return drawState{
		strokeColor: color.Black,
		fillColor:   color.Black,
		lineWidth:   1,
		lineCap:     LineCapButt,
	}
}

// point 设备坐标系中的点
type point struct {
	x, y float64
}

// stateStack Save/Restore 栈与路径缓存
//
// 变换按 canvas 语义右乘：后调用的 Translate/Rotate 先作用于路径点。
// 路径点在 MoveTo/LineTo 时立即变换到设备坐标，之后修改变换不影响已有路径。
type stateStack struct {
	cur   drawState
	saved []drawState

	subpaths [][]point
}

func newStateStack() stateStack {
	return stateStack{cur: defaultDrawState()}
}

func (st *stateStack) save() {
	st.saved = append(st.saved, st.cur)
}

// restore 栈为空时忽略
func (st *stateStack) restore() {
	n := len(st.saved)
	if n == 0 {
		return
	}
	st.cur = st.saved[n-1]
	st.saved = st.saved[:n-1]
}

func (st *stateStack) translate(x, y float64) {
	var t ebiten.GeoM
	t.Translate(x, y)
	t.Concat(st.cur.geoM)
	st.cur.geoM = t
}

func (st *stateStack) rotate(rad float64) {
	var r ebiten.GeoM
	r.Rotate(rad)
	r.Concat(st.cur.geoM)
	st.cur.geoM = r
}

func (st *stateStack) apply(x, y float64) point {
	dx, dy := st.cur.geoM.Apply(x, y)
	return point{dx, dy}
}

// axisAligned 当前变换是否只含平移/缩放
func (st *stateStack) axisAligned() bool {
	return st.cur.geoM.Element(0, 1) == 0 && st.cur.geoM.Element(1, 0) == 0
}

func (st *stateStack) beginPath() {
	st.subpaths = st.subpaths[:0]
}

func (st *stateStack) moveTo(x, y float64) {
	st.subpaths = append(st.subpaths, []point{st.apply(x, y)})
}

// lineTo 没有起点时等同于 MoveTo
func (st *stateStack) lineTo(x, y float64) {
	n := len(st.subpaths)
	if n == 0 {
		st.moveTo(x, y)
		return
	}
	st.subpaths[n-1] = append(st.subpaths[n-1], st.apply(x, y))
}

// segments 展开当前路径为线段列表
func (st *stateStack) segments() [][2]point {
	var segs [][2]point
	for _, sp := range st.subpaths {
		for k := 1; k < len(sp); k++ {
			segs = append(segs, [2]point{sp[k-1], sp[k]})
		}
	}
	return segs
}

func (st *stateStack) depth() int {
	return len(st.saved)
}
