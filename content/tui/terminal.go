package main

import (
	"fmt"
	"strconv"
	"strings"

	"aritmath/content/config"
	"aritmath/content/scene"
	"aritmath/content/utils"

	"github.com/gdamore/tcell/v2"
)

var backgrounds = [config.Backgrounds]tcell.Color{
	tcell.ColorNavy,
	tcell.ColorDarkSlateGray,
	tcell.ColorDarkOliveGreen,
	tcell.ColorMaroon,
	tcell.ColorIndigo,
}

// terminal 同时充当渲染器和输入源，游戏坐标按终端大小等比缩放
type terminal struct {
	screen  tcell.Screen
	events  chan tcell.Event
	done    chan struct{}
	stopped chan struct{}
	pressed bool
}

func newTerminal(s tcell.Screen) *terminal {
	t := &terminal{
		screen:  s,
		events:  make(chan tcell.Event, 32),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go func() {
		defer close(t.stopped)
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(t.events)
				return
			}
			select {
			case t.events <- ev:
			case <-t.done:
				return
			}
		}
	}()
	return t
}

// Close 停止事件转发，必须在 screen.Fini 之前调用
func (t *terminal) Close() {
	close(t.done)
}

// Poll 取出本帧之前积累的所有事件，不阻塞
func (t *terminal) Poll() []scene.Event {
	var out []scene.Event
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return append(out, scene.QuitEvent)
			}
			if e, ok := t.translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func (t *terminal) scale() (float64, float64) {
	w, h := t.screen.Size()
	return float64(w) / config.ScreenWidth, float64(h) / config.ScreenHeight
}

func (t *terminal) translate(ev tcell.Event) (scene.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return scene.QuitEvent, true
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
			return scene.QuitEvent, true
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		wasDown := t.pressed
		t.pressed = down
		if !down || wasDown {
			return scene.Event{}, false
		}
		cx, cy := ev.Position()
		sx, sy := t.scale()
		// 取格子中心对应的游戏坐标
		return scene.PointerAt((float64(cx)+0.5)/sx, (float64(cy)+0.5)/sy), true
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return scene.Event{}, false
}

func (t *terminal) Draw(snap scene.Snapshot) {
	bg := tcell.StyleDefault.Background(backgrounds[snap.Background%len(backgrounds)]).Foreground(tcell.ColorWhite)
	t.screen.SetStyle(bg)
	t.screen.Clear()
	w, _ := t.screen.Size()
	sx, sy := t.scale()

	switch snap.Mode {
	case config.ModeMainMenu:
		t.centered(w/2, int(150*sy), "AritMath", bg.Bold(true))
		t.text(1, 0, config.Credit, bg)
	case config.ModeLevelSelect:
		t.centered(w/2, int(150*sy), "CHOOSE A LEVEL", bg.Bold(true))
	case config.ModeLevel:
		hud := fmt.Sprintf(" Score: %d  Best: %d  Time: %.1f  %s  %s",
			snap.Score, snap.Best, snap.Remaining.Seconds(), snap.Level, strings.Repeat("♥", snap.Lives))
		t.text(0, 0, hud, bg.Bold(true))
		t.centered(w/2, int(150*sy), snap.Question, bg.Bold(true))
		balloon := tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite).Bold(true)
		for _, b := range snap.Balloons {
			t.box(b.Rect().Scale(sx, sy), strconv.Itoa(b.Answer), balloon)
		}
	case config.ModeGameOver:
		t.centered(w/2, int(100*sy), fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best), bg)
		t.centered(w/2, int(200*sy), "GAME OVER", bg.Bold(true))
	}

	button := tcell.StyleDefault.Background(tcell.ColorSteelBlue).Foreground(tcell.ColorWhite).Bold(true)
	for _, b := range snap.Buttons {
		t.box(b.Rect.Scale(sx, sy), b.Label, button)
	}
	t.screen.Show()
}

// box 填充缩放后的矩形，至少占一个格子，并把标签居中
func (t *terminal) box(r utils.Rect, label string, st tcell.Style) {
	x0, y0 := int(r.X), int(r.Y)
	x1, y1 := int(r.X+r.W), int(r.Y+r.H)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t.screen.SetContent(x, y, ' ', nil, st)
		}
	}
	t.centered((x0+x1)/2, (y0+y1-1)/2, label, st)
}

func (t *terminal) centered(cx, y int, s string, st tcell.Style) {
	t.text(cx-len([]rune(s))/2, y, s, st)
}

func (t *terminal) text(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, st)
	}
}

var (
	_ scene.Renderer    = (*terminal)(nil)
	_ scene.InputSource = (*terminal)(nil)
)
