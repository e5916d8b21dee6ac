//go:build mobile

package utils

// IsMobile 移动端构建时恒为 true
// 此时舞台表面尺寸取设备屏幕尺寸，点击来自触摸
func IsMobile() bool {
	return true
}
