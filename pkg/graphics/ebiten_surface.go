package graphics

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteSubImage 三角形填充的纹理源，首次使用时创建
var whiteSubImage *ebiten.Image

func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// EbitenSurface 基于 *ebiten.Image 的绘图表面
//
// 描边使用 vector.StrokeLine，圆形端点额外补一个实心圆。
// 每帧在 Draw 中用 NewEbitenSurface 包装 screen 即可，对象本身很轻。
type EbitenSurface struct {
	dst   *ebiten.Image
	state stateStack
}

// NewEbitenSurface 包装目标图像
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst, state: newStateStack()}
}

// Reset 切换目标图像并清空状态，用于跨帧复用
func (s *EbitenSurface) Reset(dst *ebiten.Image) {
	s.dst = dst
	s.state = newStateStack()
}

func (s *EbitenSurface) Save()                  { s.state.save() }
func (s *EbitenSurface) Restore()               { s.state.restore() }
func (s *EbitenSurface) Translate(x, y float64) { s.state.translate(x, y) }
func (s *EbitenSurface) Rotate(rad float64)     { s.state.rotate(rad) }
func (s *EbitenSurface) BeginPath()             { s.state.beginPath() }
func (s *EbitenSurface) MoveTo(x, y float64)    { s.state.moveTo(x, y) }
func (s *EbitenSurface) LineTo(x, y float64)    { s.state.lineTo(x, y) }

func (s *EbitenSurface) SetFillColor(clr color.Color)   { s.state.cur.fillColor = clr }
func (s *EbitenSurface) SetStrokeColor(clr color.Color) { s.state.cur.strokeColor = clr }
func (s *EbitenSurface) SetLineWidth(width float64)     { s.state.cur.lineWidth = width }
func (s *EbitenSurface) SetLineCap(lineCap LineCap)     { s.state.cur.lineCap = lineCap }

// Stroke 按当前样式描边当前路径
func (s *EbitenSurface) Stroke() {
	st := s.state.cur
	width := float32(st.lineWidth)
	for _, seg := range s.state.segments() {
		a, b := seg[0], seg[1]
		if st.lineCap == LineCapSquare {
			a, b = extendSegment(a, b, st.lineWidth/2)
		}
		vector.StrokeLine(s.dst, float32(a.x), float32(a.y), float32(b.x), float32(b.y), width, st.strokeColor, true)
		if st.lineCap == LineCapRound {
			vector.DrawFilledCircle(s.dst, float32(a.x), float32(a.y), width/2, st.strokeColor, true)
			vector.DrawFilledCircle(s.dst, float32(b.x), float32(b.y), width/2, st.strokeColor, true)
		}
	}
}

// FillRect 用当前填充色填充矩形（坐标经过当前变换）
func (s *EbitenSurface) FillRect(x, y, w, h float64) {
	clr := s.state.cur.fillColor
	if s.state.axisAligned() {
		p0 := s.state.apply(x, y)
		p1 := s.state.apply(x+w, y+h)
		rx, ry := math.Min(p0.x, p1.x), math.Min(p0.y, p1.y)
		rw, rh := math.Abs(p1.x-p0.x), math.Abs(p1.y-p0.y)
		vector.DrawFilledRect(s.dst, float32(rx), float32(ry), float32(rw), float32(rh), clr, false)
		return
	}

	// 旋转后的矩形拆成两个三角形
	corners := [4]point{
		s.state.apply(x, y),
		s.state.apply(x+w, y),
		s.state.apply(x+w, y+h),
		s.state.apply(x, y+h),
	}
	r, g, b, a := colorToScale(clr)
	vs := make([]ebiten.Vertex, 0, 4)
	for _, c := range corners {
		vs = append(vs, ebiten.Vertex{
			DstX: float32(c.x), DstY: float32(c.y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	is := []uint16{0, 1, 2, 0, 2, 3}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(vs, is, whiteTexture(), op)
}

// extendSegment 把线段两端各延长 d，用于方形端点
func extendSegment(a, b point, d float64) (point, point) {
	dx, dy := b.x-a.x, b.y-a.y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return a, b
	}
	ux, uy := dx/l*d, dy/l*d
	return point{a.x - ux, a.y - uy}, point{b.x + ux, b.y + uy}
}

// colorToScale 转换为顶点颜色（非预乘）
func colorToScale(clr color.Color) (r, g, b, a float32) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}
