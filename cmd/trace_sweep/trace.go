package main

import (
	"github.com/decker502/squareline/pkg/config"
	"github.com/decker502/squareline/pkg/game"
	"github.com/decker502/squareline/pkg/graphics"
)

// maxTicksPerTap 单次点击最多执行的 tick 数，防止配置异常时死循环
const maxTicksPerTap = 10000

// Trace 一次扫描的完整记录
type Trace struct {
	Nodes          int        `yaml:"nodes"`
	Lines          int        `yaml:"lines"`
	TickIntervalMs int        `yaml:"tickIntervalMs"`
	Taps           []TapTrace `yaml:"taps"`

	// FinalFrame 最后一帧的绘制统计
	FinalFrame FrameStats `yaml:"finalFrame"`
}

// TapTrace 单次点击从启动到停稳的记录
type TapTrace struct {
	Tap      int       `yaml:"tap"`
	Node     int       `yaml:"node"`
	NodeDir  int       `yaml:"nodeDir"`
	Ticks    int       `yaml:"ticks"`
	Cursor   int       `yaml:"cursor"`
	SweepDir int       `yaml:"sweepDir"`
	Flipped  bool      `yaml:"flipped,omitempty"`
	Closed   int       `yaml:"closed"`
	Scales   []float64 `yaml:"scales,flow"`
}

// FrameStats 记录表面上的绘制调用数量
type FrameStats struct {
	Calls    int `yaml:"calls"`
	Segments int `yaml:"segments"`
	Rects    int `yaml:"rects"`
}

// buildTrace 在无窗口环境下依次执行 taps 次点击，每次都推进到停稳
func buildTrace(cfg config.StageConfig, taps int) Trace {
	r := game.NewRenderer(cfg.Layout(cfg.Window.Width, cfg.Window.Height), cfg.TickInterval())
	line := r.Line()

	trace := Trace{
		Nodes:          cfg.Nodes,
		Lines:          cfg.Lines,
		TickIntervalMs: cfg.TickIntervalMs,
	}

	for tap := 1; tap <= taps; tap++ {
		node := line.Cursor()
		if !r.HandleTap() {
			continue
		}
		entry := TapTrace{
			Tap:     tap,
			Node:    node,
			NodeDir: line.Node(node).State.Dir,
		}

		for entry.Ticks < maxTicksPerTap {
			res, ok := r.Step()
			if !ok {
				break
			}
			entry.Ticks++
			if res.Settled {
				entry.Flipped = res.Flipped
				break
			}
		}

		entry.Cursor = line.Cursor()
		entry.SweepDir = line.Dir()
		entry.Scales = line.Snapshot()
		for _, s := range entry.Scales {
			if s == 1 {
				entry.Closed++
			}
		}
		trace.Taps = append(trace.Taps, entry)
	}

	s := graphics.NewRecordingSurface()
	r.Render(s)
	trace.FinalFrame = FrameStats{
		Calls:    len(s.Calls),
		Segments: len(s.Segments),
		Rects:    len(s.Rects),
	}
	return trace
}
