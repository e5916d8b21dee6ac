package game

import (
	"testing"
	"time"

	"github.com/decker502/squareline/pkg/graphics"
)

const frame = time.Second / 60

func TestRenderer_TapStartsAnimator(t *testing.T) {
	r := NewRenderer(testLayout(), 50*time.Millisecond)
	if r.IsAnimating() {
		t.Fatal("新建的 Renderer 不应处于动画中")
	}

	if !r.HandleTap() {
		t.Fatal("HandleTap() = false, want true")
	}
	if !r.IsAnimating() {
		t.Error("点击后 Animator 应处于运行状态")
	}
	if r.HandleTap() {
		t.Error("动画中 HandleTap() 应返回 false")
	}
}

func TestRenderer_UpdateUntilSettled(t *testing.T) {
	r := NewRenderer(testLayout(), 50*time.Millisecond)
	var results []StepResult
	r.OnStep = func(res StepResult) { results = append(results, res) }

	r.HandleTap()
	frames := 0
	for r.IsAnimating() && frames < 10000 {
		r.Update(frame)
		frames++
	}

	if r.IsAnimating() {
		t.Fatal("动画未在合理帧数内结束")
	}
	if len(results) == 0 || !results[len(results)-1].Settled {
		t.Fatalf("最后一个 tick 应为停稳, got %+v", results)
	}
	for _, res := range results[:len(results)-1] {
		if res.Settled {
			t.Errorf("停稳之前出现了停稳结果: %+v", res)
		}
	}
	if uint64(len(results)) != r.Animator().Ticks() {
		t.Errorf("OnStep 调用次数 = %d, Ticks() = %d", len(results), r.Animator().Ticks())
	}

	// 50ms 周期、60 帧/秒：每 3 帧一个 tick
	if frames < 3*len(results)-3 || frames > 3*len(results)+3 {
		t.Errorf("帧数 = %d, tick 数 = %d, 期望约 3 帧一个 tick", frames, len(results))
	}
	if r.Line().Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", r.Line().Cursor())
	}

	// 空闲时继续喂时间不会推进任何节点
	before := r.Line().Snapshot()
	r.Update(time.Second)
	after := r.Line().Snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("空闲时节点 %d 进度变化: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestRenderer_ExtraTicksDiscardedAfterSettle(t *testing.T) {
	r := NewRenderer(testLayout(), 50*time.Millisecond)
	r.HandleTap()

	// 一帧喂入远超所需的时间：停稳之后剩余 tick 被丢弃，下一个节点不会自动开始
	r.Update(time.Minute)

	if r.IsAnimating() {
		t.Error("停稳后 Animator 应停止")
	}
	if s := r.Line().Node(1).State; s.Dir != 0 || s.Scale != 0 {
		t.Errorf("节点 1 不应被推进: %+v", *s)
	}
	if s := r.Line().Node(0).State.Scale; s != 1 {
		t.Errorf("节点 0 进度 = %v, want 1", s)
	}
}

func TestRenderer_Step(t *testing.T) {
	r := NewRenderer(testLayout(), 0)
	if _, ok := r.Step(); ok {
		t.Error("未启动时 Step() 应返回 false")
	}

	r.HandleTap()
	var res StepResult
	ticks := 0
	for {
		var ok bool
		res, ok = r.Step()
		if !ok {
			t.Fatal("动画中 Step() 应返回 true")
		}
		ticks++
		if res.Settled {
			break
		}
	}
	if res.Node != 0 || res.Cursor != 1 {
		t.Errorf("停稳结果 = %+v", res)
	}
	if _, ok := r.Step(); ok {
		t.Error("停稳后 Step() 应返回 false")
	}
}

func TestRenderer_Render(t *testing.T) {
	l := testLayout()
	r := NewRenderer(l, 0)
	s := graphics.NewRecordingSurface()
	r.Render(s)

	if len(s.Calls) == 0 || s.Calls[1] != "FillRect" {
		t.Fatalf("应先填充背景, Calls = %v", s.Calls)
	}
	if len(s.Rects) != 1 || s.Rects[0].Color != l.BackColor {
		t.Errorf("背景 = %+v", s.Rects)
	}
	if len(s.Segments) != l.Nodes*(2+l.Lines) {
		t.Errorf("len(Segments) = %d, want %d", len(s.Segments), l.Nodes*(2+l.Lines))
	}
	if s.Depth() != 0 {
		t.Errorf("Save/Restore 不成对, Depth() = %d", s.Depth())
	}
}
