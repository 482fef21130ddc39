package scene

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"aritmath/content/config"
	"aritmath/content/cue"
	"aritmath/content/session"
	"aritmath/content/timer"
)

type Renderer interface {
	Draw(snap Snapshot)
}

// InputSource 每次调用返回本帧到达的事件，可以为空
type InputSource interface {
	Poll() []Event
}

type Bundle struct {
	Renderer Renderer
	Cues     cue.Player
	Clock    timer.Clock
	Input    InputSource
	Tuning   config.Tuning
	Rand     *rand.Rand // 为空时按当前时间播种
}

// Run 以固定帧率驱动场景机，直到收到退出事件或者遇到致命错误
func Run(b Bundle) error {
	if b.Rand == nil {
		b.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if b.Clock == nil {
		b.Clock = timer.SystemClock()
	}
	tuning, err := config.Resolve(b.Tuning)
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	b.Tuning = tuning
	m := NewMachine(session.Env{
		Rand:   b.Rand,
		Clock:  b.Clock,
		Best:   session.NewBestScores(),
		Cues:   b.Cues,
		Tuning: b.Tuning,
	})

	ticker := time.NewTicker(time.Second / time.Duration(b.Tuning.FramesPerSecond))
	defer ticker.Stop()

	for {
		if err := m.Step(b.Input.Poll()); err != nil {
			return err
		}
		if m.Done() {
			log.Printf("game over, best scores %v", m.Best().All())
			return nil
		}
		b.Renderer.Draw(m.Snapshot())
		<-ticker.C
	}
}
