// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TapSource 点击事件源，每帧轮询一次
// 返回 true 表示本帧发生了一次点击
type TapSource func() bool

// IsJustTapped 检查本帧是否刚刚发生点击
// 同时支持触摸、鼠标左键和空格键
func IsJustTapped() bool {
	// 首先检查触摸输入（移动设备）
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		return true
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}

	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// TapSequence 按帧回放预设的点击序列
// 序列耗尽后始终返回 false
func TapSequence(frames ...bool) TapSource {
	i := 0
	return func() bool {
		if i >= len(frames) {
			return false
		}
		tapped := frames[i]
		i++
		return tapped
	}
}

// NoTaps 从不产生点击的事件源
func NoTaps() bool {
	return false
}
