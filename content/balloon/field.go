package balloon

import (
	"aritmath/content/config"
	"aritmath/content/utils"

	"golang.org/x/image/math/f64"
)

type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

type Balloon struct {
	Pos    f64.Vec2 // 左上角
	Dir    Direction
	Answer int
}

func (b Balloon) Rect() utils.Rect {
	return utils.Rect{X: b.Pos[0], Y: b.Pos[1], W: config.BalloonWidth, H: config.BalloonHeight}
}

// Bounds 是气球上下往返的两条边界以及每帧的移动距离
type Bounds struct {
	Top, Bottom float64
	Step        float64
}

func BoundsFrom(t config.Tuning) Bounds {
	return Bounds{Top: t.BalloonTop, Bottom: t.BalloonBottom, Step: t.BalloonStep}
}

type Field struct {
	balloons []Balloon
	bounds   Bounds
}

// NewField 从左到右依次摆放气球，按插入顺序（从 1 开始）奇数向上、偶数向下
func NewField(answers []int, bounds Bounds) *Field {
	f := &Field{
		balloons: make([]Balloon, 0, len(answers)),
		bounds:   bounds,
	}
	x := float64(config.BalloonStartX)
	for i, ans := range answers {
		dir := Up
		if (i+1)%2 == 0 {
			dir = Down
		}
		f.balloons = append(f.balloons, Balloon{
			Pos:    f64.Vec2{x, config.BalloonStartY},
			Dir:    dir,
			Answer: ans,
		})
		x += config.BalloonSpacing
	}
	return f
}

// Tick 每个气球沿自己的方向移动一步，碰到边界后下一帧反向
func (f *Field) Tick() {
	for i := range f.balloons {
		b := &f.balloons[i]
		b.Pos[1] += float64(b.Dir) * f.bounds.Step
		if b.Dir == Up && b.Pos[1] <= f.bounds.Top {
			b.Pos[1] = f.bounds.Top
			b.Dir = Down
		} else if b.Dir == Down && b.Pos[1] >= f.bounds.Bottom {
			b.Pos[1] = f.bounds.Bottom
			b.Dir = Up
		}
	}
}

// Hit 返回被点中的气球下标，重叠时取先摆放的那个
func (f *Field) Hit(p f64.Vec2) (int, bool) {
	for i, b := range f.balloons {
		if b.Rect().Contains(p) {
			return i, true
		}
	}
	return -1, false
}

func (f *Field) At(i int) Balloon {
	return f.balloons[i]
}

// Remove 只移除下标为 i 的气球，其余气球保持原有位置和方向
func (f *Field) Remove(i int) {
	if i < 0 || i >= len(f.balloons) {
		return
	}
	f.balloons = append(f.balloons[:i], f.balloons[i+1:]...)
}

func (f *Field) Len() int {
	return len(f.balloons)
}

// Balloons 返回副本，调用方修改不会影响场上的气球
func (f *Field) Balloons() []Balloon {
	out := make([]Balloon, len(f.balloons))
	copy(out, f.balloons)
	return out
}
