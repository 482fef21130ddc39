package scene

import "golang.org/x/image/math/f64"

type EventType int

const (
	PointerDown EventType = iota
	Tick
	Quit
)

type Event struct {
	Type EventType
	Pos  f64.Vec2 // 仅 PointerDown 使用
}

func PointerAt(x, y float64) Event {
	return Event{Type: PointerDown, Pos: f64.Vec2{x, y}}
}

var (
	TickEvent = Event{Type: Tick}
	QuitEvent = Event{Type: Quit}
)
