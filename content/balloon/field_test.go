package balloon

import (
	"testing"

	"aritmath/content/config"

	"golang.org/x/image/math/f64"
)

func testBounds() Bounds {
	return BoundsFrom(config.Default())
}

func TestNewFieldLayout(t *testing.T) {
	f := NewField([]int{10, 20, 30, 40, 50, 60}, testBounds())
	if f.Len() != 6 {
		t.Fatalf("Len = %d, want 6", f.Len())
	}
	for i, b := range f.Balloons() {
		wantX := float64(config.BalloonStartX + i*config.BalloonSpacing)
		if b.Pos[0] != wantX || b.Pos[1] != config.BalloonStartY {
			t.Errorf("balloon %d at %v, want (%v, %v)", i, b.Pos, wantX, config.BalloonStartY)
		}
		want := Up
		if (i+1)%2 == 0 {
			want = Down
		}
		if b.Dir != want {
			t.Errorf("balloon %d dir = %v, want %v", i, b.Dir, want)
		}
		if b.Answer != (i+1)*10 {
			t.Errorf("balloon %d answer = %d", i, b.Answer)
		}
	}
}

func TestTickBouncesAtUpperBound(t *testing.T) {
	bounds := testBounds()
	f := NewField([]int{1}, bounds)

	ticks := int((config.BalloonStartY - bounds.Top) / bounds.Step)
	for i := 0; i < ticks; i++ {
		f.Tick()
	}
	b := f.At(0)
	if b.Pos[1] != bounds.Top {
		t.Fatalf("y = %v after %d ticks, want %v", b.Pos[1], ticks, bounds.Top)
	}
	if b.Dir != Down {
		t.Fatalf("dir at upper bound = %v, want Down", b.Dir)
	}

	f.Tick()
	if got := f.At(0).Pos[1]; got != bounds.Top+bounds.Step {
		t.Errorf("y after bounce = %v, want %v", got, bounds.Top+bounds.Step)
	}
}

func TestTickBouncesAtLowerBound(t *testing.T) {
	bounds := testBounds()
	f := NewField([]int{1, 2}, bounds)

	ticks := int((bounds.Bottom - config.BalloonStartY) / bounds.Step)
	for i := 0; i < ticks; i++ {
		f.Tick()
	}
	b := f.At(1)
	if b.Pos[1] != bounds.Bottom || b.Dir != Up {
		t.Fatalf("balloon at %v dir %v, want %v Up", b.Pos[1], b.Dir, bounds.Bottom)
	}

	f.Tick()
	if got := f.At(1).Pos[1]; got != bounds.Bottom-bounds.Step {
		t.Errorf("y after bounce = %v, want %v", got, bounds.Bottom-bounds.Step)
	}
}

func TestTickStepThatOvershootsIsClamped(t *testing.T) {
	f := NewField([]int{1}, Bounds{Top: 200, Bottom: 400, Step: 30})
	for i := 0; i < 4; i++ {
		f.Tick()
	}
	b := f.At(0)
	if b.Pos[1] != 200 || b.Dir != Down {
		t.Errorf("got y=%v dir=%v, want clamp to 200 Down", b.Pos[1], b.Dir)
	}
}

func TestTickStaysWithinBounds(t *testing.T) {
	bounds := testBounds()
	f := NewField([]int{1, 2, 3, 4, 5, 6}, bounds)
	for i := 0; i < 2000; i++ {
		f.Tick()
		for _, b := range f.Balloons() {
			if b.Pos[1] < bounds.Top || b.Pos[1] > bounds.Bottom {
				t.Fatalf("tick %d: balloon escaped bounds at %v", i, b.Pos)
			}
		}
	}
}

func TestHitAndRemove(t *testing.T) {
	f := NewField([]int{7, 8, 9}, testBounds())

	second := f.At(1)
	idx, ok := f.Hit(f64.Vec2{second.Pos[0] + 1, second.Pos[1] + 1})
	if !ok || idx != 1 {
		t.Fatalf("Hit = %d, %v; want 1, true", idx, ok)
	}
	if _, ok := f.Hit(f64.Vec2{0, 0}); ok {
		t.Error("Hit on empty space reported a balloon")
	}

	f.Remove(idx)
	if f.Len() != 2 {
		t.Fatalf("Len after remove = %d", f.Len())
	}
	got := f.Balloons()
	if got[0].Answer != 7 || got[1].Answer != 9 {
		t.Errorf("remaining answers = %d, %d", got[0].Answer, got[1].Answer)
	}
	if got[1].Pos != f.At(1).Pos {
		t.Error("remaining balloon moved on remove")
	}

	f.Remove(10)
	if f.Len() != 2 {
		t.Error("out of range remove changed the field")
	}
}

func TestBalloonsReturnsCopy(t *testing.T) {
	f := NewField([]int{1}, testBounds())
	bs := f.Balloons()
	bs[0].Answer = 99
	if f.At(0).Answer != 1 {
		t.Error("Balloons exposed internal state")
	}
}
