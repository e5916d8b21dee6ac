// Package app 提供舞台应用的核心包装器
//
// 该包将启动逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp() 和 Run()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/squareline/pkg/config"
	"github.com/decker502/squareline/pkg/game"
	"github.com/decker502/squareline/pkg/scenes"
	"github.com/decker502/squareline/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和调试信息
	Verbose bool
	// Fullscreen 全屏启动，表面尺寸取显示器尺寸
	Fullscreen bool
	// ConfigPath 磁盘上的舞台配置文件，为空则使用嵌入的 data/stage.yaml
	ConfigPath string
	// Taps 点击事件源，为 nil 时使用鼠标/触摸/空格键
	Taps utils.TapSource
}

// App 是舞台应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene game.Scene
	stage config.StageConfig

	// 表面尺寸在启动时确定，之后不再变化
	width, height int

	fullscreen bool
	verbose    bool
}

// NewApp 创建并初始化舞台应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	stage, err := loadStageConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("舞台配置加载失败: %w", err)
	}

	width, height := stage.Window.Width, stage.Window.Height
	if cfg.Fullscreen || utils.IsMobile() {
		if w, h := ebiten.Monitor().Size(); w > 0 && h > 0 {
			width, height = w, h
		}
	}
	log.Printf("[App] 表面尺寸: %dx%d (fullscreen=%v)", width, height, cfg.Fullscreen)

	return &App{
		scene:      scenes.NewStageScene(stage, width, height, cfg.Taps, cfg.Verbose),
		stage:      stage,
		width:      width,
		height:     height,
		fullscreen: cfg.Fullscreen,
		verbose:    cfg.Verbose,
	}, nil
}

func loadStageConfig(path string) (config.StageConfig, error) {
	if path == "" {
		log.Printf("[Config] 加载嵌入配置: %s", config.StageConfigPath)
		return config.LoadEmbeddedStageConfig(config.StageConfigPath)
	}
	log.Printf("[Config] 加载配置文件: %s", path)
	return config.LoadStageConfig(path)
}

// Update 更新舞台逻辑
// 每个 tick 调用一次（TPS 由配置决定）
func (a *App) Update() error {
	// Esc 退出
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.scene.Update(a.stage.FrameDelta())
	return nil
}

// Draw 绘制舞台画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时用背景色填充 letterbox 区域
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(a.letterboxColor())
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

func (a *App) letterboxColor() color.Color {
	c, err := config.ParseHexColor(a.stage.Style.BackColor)
	if err != nil {
		return color.Black
	}
	return c
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Size 返回表面尺寸
func (a *App) Size() (int, int) {
	return a.width, a.height
}

// StageConfig 返回加载的舞台配置
func (a *App) StageConfig() config.StageConfig {
	return a.stage
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Run 设置窗口并启动游戏循环，直到窗口关闭或按下 Esc
func Run(a *App) error {
	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowTitle(a.stage.Window.Title)
	ebiten.SetTPS(a.stage.TPS)
	ebiten.SetFullscreen(a.fullscreen)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
