package main

import (
	"log"
	"math/rand"

	"aritmath/content/config"
	"aritmath/content/scene"
	"aritmath/content/session"
	"aritmath/content/timer"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Game struct {
	machine *scene.Machine
	touches []ebiten.TouchID
}

func NewGame(tuning config.Tuning, r *rand.Rand) *Game {
	cues := newCuePlayer()
	cues.PlayMusic()
	return &Game{
		machine: scene.NewMachine(session.Env{
			Rand:   r,
			Clock:  timer.SystemClock(),
			Best:   session.NewBestScores(),
			Cues:   cues,
			Tuning: tuning,
		}),
	}
}

// Update 每帧调用一次：收集本帧的点击，然后交给场景机推进一帧
func (g *Game) Update() error {
	if err := g.machine.Step(g.events()); err != nil {
		return err
	}
	if g.machine.Done() {
		log.Printf("best scores %v", g.machine.Best().All())
		return ebiten.Termination
	}
	return nil
}

func (g *Game) events() []scene.Event {
	var events []scene.Event
	if ebiten.IsWindowBeingClosed() {
		return append(events, scene.QuitEvent)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, scene.PointerAt(float64(x), float64(y)))
	}
	// 触屏设备上每个新的触点都算一次点击
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		events = append(events, scene.PointerAt(float64(x), float64(y)))
	}
	return events
}

// Draw 每次绘制都会调用这个函数，按当前场景的快照重新绘制画面
func (g *Game) Draw(screen *ebiten.Image) {
	if g.machine.Done() {
		return
	}
	screenRenderer{screen: screen}.Draw(g.machine.Snapshot())
	x, y := ebiten.CursorPosition()
	drawCrosshair(screen, x, y)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
