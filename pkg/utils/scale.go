package utils

import "math"

// Scale Functions (进度值映射函数)
//
// 节点动画只有一个进度值 scale ∈ [0, 1]，各个图形元素（移动线、旋转线）
// 通过这些函数把它切分成各自的局部进度。

const (
	// ScaleDivider 前后半程的分界点
	// scale < 0.51 为前半程，>= 0.51 为后半程
	ScaleDivider = 0.51

	// ScaleGap 每个 tick 的基础步长
	ScaleGap = 0.05
)

// ScaleFactor 返回进度所处的半程
// [0, 0.51) 返回 0，[0.51, 1] 返回 1
func ScaleFactor(scale float64) float64 {
	return math.Floor(scale / ScaleDivider)
}

// MaxScale 返回 scale 超过第 i 个阈值（共 n 个）的部分，不小于 0
func MaxScale(scale float64, i, n int) float64 {
	return math.Max(0, scale-float64(i)/float64(n))
}

// DivideScale 把 scale 的第 i 段（共 n 段）归一化到 [0, 1]
//
// 第 i 段填满之前返回值线性上升，填满后保持为 1。
// 各段按下标顺序依次填满。
func DivideScale(scale float64, i, n int) float64 {
	return math.Min(1/float64(n), MaxScale(scale, i, n)) * float64(n)
}

// MirrorValue 根据所处半程在两个速率除数之间切换
// 前半程返回 1/a，后半程返回 1/b
func MirrorValue(scale, a, b float64) float64 {
	k := ScaleFactor(scale)
	return (1-k)/a + k/b
}

// UpdateValue 返回一个 tick 的进度增量
// dir 为 1 时递增，为 -1 时递减，为 0 时不变
func UpdateValue(scale float64, dir int, a, b float64) float64 {
	return MirrorValue(scale, a, b) * float64(dir) * ScaleGap
}
