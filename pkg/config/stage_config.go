package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/decker502/squareline/pkg/embedded"
	"github.com/decker502/squareline/pkg/graphics"
	"gopkg.in/yaml.v3"
)

// StageConfigPath 嵌入的舞台配置文件路径
const StageConfigPath = "data/stage.yaml"

// StageConfig 舞台配置
//
// 所有常量（窗口尺寸、节点数、线条数、tick 周期、颜色、尺寸系数）
// 集中在这里，加载后按值传给各个构造函数，运行期间不再修改。
//
// 配置文件位置: data/stage.yaml
type StageConfig struct {
	// Window 窗口配置
	Window WindowConfig `yaml:"window"`

	// Nodes 节点数量
	Nodes int `yaml:"nodes"`

	// Lines 每个节点的旋转线数量
	Lines int `yaml:"lines"`

	// TickIntervalMs 动画 tick 周期（毫秒）
	TickIntervalMs int `yaml:"tickIntervalMs"`

	// TPS 每秒逻辑更新次数
	TPS int `yaml:"tps"`

	// Style 绘制样式
	Style StyleConfig `yaml:"style"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// StyleConfig 绘制样式配置
type StyleConfig struct {
	// ForeColor 描边颜色，格式 "#RRGGBB"
	ForeColor string `yaml:"foreColor"`

	// BackColor 背景颜色，格式 "#RRGGBB"
	BackColor string `yaml:"backColor"`

	// StrokeFactor 线宽 = min(宽, 高) / StrokeFactor
	StrokeFactor float64 `yaml:"strokeFactor"`

	// SizeFactor 节点半边长 = 节点间距 / SizeFactor
	SizeFactor float64 `yaml:"sizeFactor"`
}

// DefaultStageConfig 返回默认配置（与 data/stage.yaml 一致）
func DefaultStageConfig() StageConfig {
	return StageConfig{
		Window: WindowConfig{
			Width:  480,
			Height: 800,
			Title:  "Square Enclosing Line",
		},
		Nodes:          5,
		Lines:          2,
		TickIntervalMs: 50,
		TPS:            60,
		Style: StyleConfig{
			ForeColor:    "#1565C0",
			BackColor:    "#bdbdbd",
			StrokeFactor: 90,
			SizeFactor:   2.9,
		},
	}
}

// ParseStageConfig 解析 YAML 格式的舞台配置
//
// 文档中未出现的字段保留默认值。
//
// 参数:
//   - data: YAML 文档内容
//
// 返回:
//   - StageConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseStageConfig(data []byte) (StageConfig, error) {
	cfg := DefaultStageConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StageConfig{}, fmt.Errorf("failed to parse stage config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return StageConfig{}, fmt.Errorf("invalid stage config: %w", err)
	}
	return cfg, nil
}

// LoadStageConfig 从磁盘加载舞台配置
func LoadStageConfig(path string) (StageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StageConfig{}, fmt.Errorf("failed to read stage config: %w", err)
	}
	return ParseStageConfig(data)
}

// LoadEmbeddedStageConfig 从嵌入资源加载舞台配置
// 调用前必须先调用 embedded.Init()
func LoadEmbeddedStageConfig(path string) (StageConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return StageConfig{}, fmt.Errorf("failed to read stage config: %w", err)
	}
	return ParseStageConfig(data)
}

// Validate 验证配置有效性
func (c StageConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Nodes <= 0 {
		return fmt.Errorf("nodes must be > 0, got %d", c.Nodes)
	}
	if c.Lines <= 0 {
		return fmt.Errorf("lines must be > 0, got %d", c.Lines)
	}
	if c.TickIntervalMs <= 0 {
		return fmt.Errorf("tickIntervalMs must be > 0, got %d", c.TickIntervalMs)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be > 0, got %d", c.TPS)
	}
	if c.Style.StrokeFactor <= 0 {
		return fmt.Errorf("style.strokeFactor must be > 0, got %.2f", c.Style.StrokeFactor)
	}
	if c.Style.SizeFactor <= 0 {
		return fmt.Errorf("style.sizeFactor must be > 0, got %.2f", c.Style.SizeFactor)
	}
	if _, err := ParseHexColor(c.Style.ForeColor); err != nil {
		return fmt.Errorf("style.foreColor: %w", err)
	}
	if _, err := ParseHexColor(c.Style.BackColor); err != nil {
		return fmt.Errorf("style.backColor: %w", err)
	}
	return nil
}

// TickInterval 返回 tick 周期
func (c StageConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// FrameDelta 返回每个逻辑帧的时长（秒）
func (c StageConfig) FrameDelta() float64 {
	return 1.0 / float64(c.TPS)
}

// Layout 生成指定表面尺寸下的绘制布局
// 颜色在 Validate 中已检查，这里解析失败时退回黑色
func (c StageConfig) Layout(width, height int) graphics.Layout {
	fore, err := ParseHexColor(c.Style.ForeColor)
	if err != nil {
		fore = color.RGBA{A: 0xff}
	}
	back, err := ParseHexColor(c.Style.BackColor)
	if err != nil {
		back = color.RGBA{A: 0xff}
	}
	return graphics.Layout{
		Width:        float64(width),
		Height:       float64(height),
		Nodes:        c.Nodes,
		Lines:        c.Lines,
		StrokeFactor: c.Style.StrokeFactor,
		SizeFactor:   c.Style.SizeFactor,
		ForeColor:    fore,
		BackColor:    back,
	}
}

// ParseHexColor 解析 "#RRGGBB" 或 "#RGB" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
