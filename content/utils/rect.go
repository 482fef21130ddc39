package utils

import "golang.org/x/image/math/f64"

// Rect 是以左上角和宽高描述的轴对齐矩形
type Rect struct {
	X, Y, W, H float64
}

func RectOf(r [4]float64) Rect {
	return Rect{X: r[0], Y: r[1], W: r[2], H: r[3]}
}

// Contains 左闭右开，与像素坐标的命中判断一致
func (r Rect) Contains(p f64.Vec2) bool {
	return p[0] >= r.X && p[0] < r.X+r.W && p[1] >= r.Y && p[1] < r.Y+r.H
}

func (r Rect) Center() f64.Vec2 {
	return f64.Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Scale 把矩形按比例缩放，用于终端等低分辨率的绘制目标
func (r Rect) Scale(sx, sy float64) Rect {
	return Rect{X: r.X * sx, Y: r.Y * sy, W: r.W * sx, H: r.H * sy}
}
