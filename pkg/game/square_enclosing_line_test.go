package game

import (
	"image/color"
	"testing"

	"github.com/decker502/squareline/pkg/graphics"
)

func testLayout() graphics.Layout {
	return graphics.Layout{
		Width:        480,
		Height:       800,
		Nodes:        5,
		Lines:        2,
		StrokeFactor: 90,
		SizeFactor:   2.9,
		ForeColor:    color.RGBA{R: 0x15, G: 0x65, B: 0xC0, A: 0xff},
		BackColor:    color.RGBA{R: 0xbd, G: 0xbd, B: 0xbd, A: 0xff},
	}
}

// settle 连续推进直到游标节点停稳
func settle(t *testing.T, sel *SquareEnclosingLine) StepResult {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if res := sel.Update(); res.Settled {
			return res
		}
	}
	t.Fatalf("节点 %d 在 1000 个 tick 内未停稳", sel.Cursor())
	return StepResult{}
}

func TestNewSquareEnclosingLine(t *testing.T) {
	sel := NewSquareEnclosingLine(testLayout())

	if sel.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", sel.Len())
	}
	if sel.Cursor() != 0 || sel.Dir() != 1 {
		t.Errorf("初始游标 = %d, 方向 = %d, want 0, 1", sel.Cursor(), sel.Dir())
	}
	for i := 0; i < sel.Len(); i++ {
		s := sel.Node(i).State
		if s.Scale != 0 || s.Dir != 0 || s.PrevScale != 0 {
			t.Errorf("节点 %d 初始状态 = %+v", i, *s)
		}
	}
	if sel.Node(-1) != nil || sel.Node(5) != nil {
		t.Error("越界 Node() 应返回 nil")
	}
}

func TestSquareEnclosingLine_FirstTap(t *testing.T) {
	sel := NewSquareEnclosingLine(testLayout())

	if !sel.StartUpdating() {
		t.Fatal("StartUpdating() = false, want true")
	}
	if d := sel.Node(0).State.Dir; d != 1 {
		t.Errorf("节点 0 方向 = %d, want 1", d)
	}
	if !sel.IsAnimating() {
		t.Error("IsAnimating() = false, want true")
	}

	prev := 0.0
	for {
		res := sel.Update()
		if res.Node != 0 {
			t.Fatalf("推进的节点 = %d, want 0", res.Node)
		}
		if res.Settled {
			if res.Cursor != 1 || res.Flipped {
				t.Errorf("停稳结果 = %+v, want Cursor=1 Flipped=false", res)
			}
			break
		}
		if s := sel.Node(0).State.Scale; s <= prev {
			t.Fatalf("进度未增加: %v -> %v", prev, s)
		} else {
			prev = s
		}
	}

	if sel.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", sel.Cursor())
	}
	if s := sel.Node(0).State; s.Scale != 1 || s.Dir != 0 {
		t.Errorf("节点 0 停稳状态 = %+v", *s)
	}

	// 下一个节点动画期间节点 0 保持为 1
	sel.StartUpdating()
	settle(t, sel)
	if s := sel.Node(0).State.Scale; s != 1 {
		t.Errorf("节点 0 进度 = %v, want 1", s)
	}
	if s := sel.Node(1).State.Scale; s != 1 {
		t.Errorf("节点 1 进度 = %v, want 1", s)
	}
}

func TestSquareEnclosingLine_TapIgnoredWhileAnimating(t *testing.T) {
	sel := NewSquareEnclosingLine(testLayout())
	sel.StartUpdating()
	sel.Update()
	before := *sel.Node(0).State

	if sel.StartUpdating() {
		t.Error("动画中 StartUpdating() 应返回 false")
	}
	if *sel.Node(0).State != before {
		t.Errorf("动画中的点击修改了状态: %+v -> %+v", before, *sel.Node(0).State)
	}
}

func TestSquareEnclosingLine_UpdateIdle(t *testing.T) {
	sel := NewSquareEnclosingLine(testLayout())
	res := sel.Update()
	if res.Settled || res.Cursor != 0 {
		t.Errorf("静止时 Update() = %+v", res)
	}
}

func TestSquareEnclosingLine_BoundaryFlip(t *testing.T) {
	sel := NewSquareEnclosingLine(testLayout())

	// 正向扫过 0..3，游标到达 4
	for i := 0; i < 4; i++ {
		sel.StartUpdating()
		settle(t, sel)
	}
	if sel.Cursor() != 4 || sel.Dir() != 1 {
		t.Fatalf("游标 = %d, 方向 = %d, want 4, 1", sel.Cursor(), sel.Dir())
	}

	// 节点 4 停稳后没有后继：翻转方向，游标不动
	sel.StartUpdating()
	res := settle(t, sel)
	if !res.Flipped || res.Cursor != 4 {
		t.Errorf("停稳结果 = %+v, want Flipped=true Cursor=4", res)
	}
	if sel.Dir() != -1 {
		t.Errorf("Dir() = %d, want -1", sel.Dir())
	}
	if s := sel.Node(4).State.Scale; s != 1 {
		t.Errorf("节点 4 进度 = %v, want 1", s)
	}

	// 下一次点击让节点 4 反向
	sel.StartUpdating()
	if d := sel.Node(4).State.Dir; d != -1 {
		t.Errorf("节点 4 方向 = %d, want -1", d)
	}
	res = settle(t, sel)
	if sel.Node(4).State.Scale != 0 || res.Cursor != 3 {
		t.Errorf("节点 4 进度 = %v, 游标 = %d, want 0, 3", sel.Node(4).State.Scale, res.Cursor)
	}
}

func TestSquareEnclosingLine_PingPong(t *testing.T) {
	sel := NewSquareEnclosingLine(testLayout())

	// 一个完整往返需要 10 次点击
	wantNodes := []int{0, 1, 2, 3, 4, 4, 3, 2, 1, 0, 0, 1}
	wantFlip := []bool{false, false, false, false, true, false, false, false, false, true, false, false}

	for k, want := range wantNodes {
		if sel.Cursor() != want {
			t.Fatalf("第 %d 次点击游标 = %d, want %d", k, sel.Cursor(), want)
		}
		sel.StartUpdating()
		res := settle(t, sel)
		if res.Node != want || res.Flipped != wantFlip[k] {
			t.Errorf("第 %d 次点击结果 = %+v, want Node=%d Flipped=%v", k, res, want, wantFlip[k])
		}
	}

	// 往返之后只剩节点 0、1 处于 1
	want := []float64{1, 1, 0, 0, 0}
	for i, s := range sel.Snapshot() {
		if s != want[i] {
			t.Errorf("节点 %d 进度 = %v, want %v", i, s, want[i])
		}
	}
}

func TestSquareEnclosingLine_DrawOrderIndependentOfCursor(t *testing.T) {
	l := testLayout()
	sel := NewSquareEnclosingLine(l)
	for i := 0; i < 3; i++ {
		sel.StartUpdating()
		settle(t, sel)
	}
	sel.StartUpdating()
	sel.Update()

	r := graphics.NewRecordingSurface()
	sel.Draw(r)

	perNode := 2 + l.Lines
	if len(r.Segments) != perNode*l.Nodes {
		t.Fatalf("len(Segments) = %d, want %d", len(r.Segments), perNode*l.Nodes)
	}
	// 每个节点的底边按下标从上到下排列
	for i := 0; i < l.Nodes; i++ {
		base := r.Segments[i*perNode+1]
		wantY := l.Gap()*float64(i+1) + l.Size()
		if base.Y0 < wantY-1e-6 || base.Y0 > wantY+1e-6 {
			t.Errorf("第 %d 个绘制的底边 Y = %v, want %v", i, base.Y0, wantY)
		}
	}
}
