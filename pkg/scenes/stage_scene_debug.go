package scenes

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugText 调试信息文本
func (s *StageScene) debugText() string {
	line := s.renderer.Line()
	var b strings.Builder
	fmt.Fprintf(&b, "TPS: %.1f\n", ebiten.ActualTPS())
	fmt.Fprintf(&b, "cursor: %d  dir: %+d  animating: %v\n", line.Cursor(), line.Dir(), s.renderer.IsAnimating())
	for i, sc := range line.Snapshot() {
		fmt.Fprintf(&b, "node %d: %.3f\n", i, sc)
	}
	return b.String()
}

// drawDebug 在左上角绘制调试信息
// 仅在 -verbose 启动时启用
func (s *StageScene) drawDebug(screen *ebiten.Image) {
	if !s.showDebug {
		return
	}
	ebitenutil.DebugPrintAt(screen, s.debugText(), 4, 4)
}
