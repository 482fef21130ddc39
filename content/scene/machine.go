package scene

import (
	"fmt"
	"time"

	"aritmath/content/balloon"
	"aritmath/content/config"
	"aritmath/content/cue"
	"aritmath/content/session"
	"aritmath/content/utils"
)

// Machine 独占当前场景，负责把输入事件交给 Transition
type Machine struct {
	current Scene
	env     session.Env
}

func NewMachine(env session.Env) *Machine {
	if env.Cues == nil {
		env.Cues = cue.Nop
	}
	if env.Best == nil {
		env.Best = session.NewBestScores()
	}
	// 零值参数按默认值处理，非法参数留给会话创建时报错
	if env.Tuning == (config.Tuning{}) {
		env.Tuning = config.Default()
	}
	return &Machine{current: NewMainMenu(env), env: env}
}

func (m *Machine) Current() Scene {
	return m.current
}

func (m *Machine) Done() bool {
	return m.current == nil
}

func (m *Machine) Best() *session.BestScores {
	return m.env.Best
}

func (m *Machine) Handle(ev Event) error {
	if m.Done() {
		return nil
	}
	next, err := Transition(m.current, ev, m.env)
	if err != nil {
		return fmt.Errorf("scene %v: %w", m.current.Mode(), err)
	}
	m.current = next
	return nil
}

// Step 处理一帧：先依次处理本帧的输入，再推进一次 Tick
func (m *Machine) Step(events []Event) error {
	for _, ev := range events {
		if err := m.Handle(ev); err != nil {
			return err
		}
		if m.Done() {
			return nil
		}
	}
	return m.Handle(TickEvent)
}

type Button struct {
	Label string
	Rect  utils.Rect
}

// Snapshot 是绘制一帧所需的只读状态
type Snapshot struct {
	Mode       config.Mode
	Background int
	Buttons    []Button

	Question  string
	Balloons  []balloon.Balloon
	Level     session.Level
	Score     int
	Best      int
	Lives     int
	Remaining time.Duration
}

func (m *Machine) Snapshot() Snapshot {
	switch sc := m.current.(type) {
	case *MainMenu:
		return Snapshot{
			Mode:       sc.Mode(),
			Background: sc.Background,
			Buttons:    []Button{{"START", sc.Start}, {"QUIT", sc.Quit}},
		}
	case *LevelSelect:
		snap := Snapshot{Mode: sc.Mode(), Background: sc.Background}
		for i, r := range sc.Buttons {
			snap.Buttons = append(snap.Buttons, Button{Label: fmt.Sprintf("LVL %d", i+1), Rect: r})
		}
		return snap
	case *LevelScene:
		s := sc.Session
		return Snapshot{
			Mode:       sc.Mode(),
			Background: sc.Background,
			Question:   s.Operation().String(),
			Balloons:   s.Balloons(),
			Level:      s.Level(),
			Score:      s.Score(),
			Best:       s.Best(),
			Lives:      s.Lives(),
			Remaining:  s.Timer().Remaining(),
		}
	case *GameOver:
		return Snapshot{
			Mode:       sc.Mode(),
			Background: sc.Background,
			Buttons:    []Button{{"CONTINUE", sc.Continue}, {"QUIT", sc.Quit}},
			Level:      sc.Level,
			Score:      sc.Score,
			Best:       m.env.Best.Get(sc.Level),
		}
	}
	return Snapshot{}
}
