package scenes

import (
	"log"
	"time"

	"github.com/decker502/squareline/pkg/config"
	"github.com/decker502/squareline/pkg/game"
	"github.com/decker502/squareline/pkg/graphics"
	"github.com/decker502/squareline/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// StageScene 唯一的场景：持有绘图表面和点击事件源，动画逻辑全部交给 Renderer
type StageScene struct {
	renderer *game.Renderer
	taps     utils.TapSource
	surface  *graphics.EbitenSurface

	// showDebug 是否绘制调试信息（游标、方向、各节点进度）
	showDebug bool
}

// NewStageScene 创建舞台场景
//
// 参数：
//   - cfg: 舞台配置
//   - width, height: 绘图表面尺寸，启动时确定，之后不再变化
//   - taps: 点击事件源，为 nil 时使用 utils.IsJustTapped
//   - showDebug: 是否绘制调试信息
func NewStageScene(cfg config.StageConfig, width, height int, taps utils.TapSource, showDebug bool) *StageScene {
	if taps == nil {
		taps = utils.IsJustTapped
	}
	layout := cfg.Layout(width, height)
	log.Printf("[Stage] 表面尺寸 %dx%d, 节点 %d, 节点间距 %.1f, 半边长 %.1f",
		width, height, layout.Nodes, layout.Gap(), layout.Size())

	return &StageScene{
		renderer:  game.NewRenderer(layout, cfg.TickInterval()),
		taps:      taps,
		showDebug: showDebug,
	}
}

// Update 轮询点击并推进动画
func (s *StageScene) Update(deltaTime float64) {
	if s.taps() {
		if !s.renderer.HandleTap() {
			log.Printf("[Stage] 动画进行中, 忽略点击")
		}
	}
	s.renderer.Update(time.Duration(deltaTime * float64(time.Second)))
}

// Draw 绘制整个舞台
func (s *StageScene) Draw(screen *ebiten.Image) {
	if s.surface == nil {
		s.surface = graphics.NewEbitenSurface(screen)
	} else {
		s.surface.Reset(screen)
	}
	s.renderer.Render(s.surface)
	s.drawDebug(screen)
}

// Renderer 返回动画渲染器
func (s *StageScene) Renderer() *game.Renderer {
	return s.renderer
}
