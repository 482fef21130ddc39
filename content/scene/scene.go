package scene

import (
	"log"

	"aritmath/content/config"
	"aritmath/content/cue"
	"aritmath/content/session"
	"aritmath/content/utils"
)

// Scene 是场景的封闭集合：*MainMenu、*LevelSelect、*LevelScene、*GameOver。
// 所有转换都在 Transition 里按具体类型分派。
type Scene interface {
	Mode() config.Mode
}

type MainMenu struct {
	Background int
	Start      utils.Rect
	Quit       utils.Rect
}

func (*MainMenu) Mode() config.Mode { return config.ModeMainMenu }

type LevelSelect struct {
	Background int
	Buttons    [config.LevelCount]utils.Rect
}

func (*LevelSelect) Mode() config.Mode { return config.ModeLevelSelect }

type LevelScene struct {
	Background int
	Session    *session.Session
}

func (*LevelScene) Mode() config.Mode { return config.ModeLevel }

type GameOver struct {
	Background int
	Level      session.Level
	Score      int
	Continue   utils.Rect
	Quit       utils.Rect
}

func (*GameOver) Mode() config.Mode { return config.ModeGameOver }

func background(env session.Env) int {
	return env.Rand.Intn(config.Backgrounds)
}

func NewMainMenu(env session.Env) *MainMenu {
	return &MainMenu{
		Background: background(env),
		Start:      utils.RectOf(config.StartButton),
		Quit:       utils.RectOf(config.MenuQuitButton),
	}
}

func NewLevelSelect(env session.Env) *LevelSelect {
	s := &LevelSelect{Background: background(env)}
	x := float64(config.LevelButtonStartX)
	for i := range s.Buttons {
		s.Buttons[i] = utils.Rect{X: x, Y: config.LevelButtonY, W: config.LevelButtonWidth, H: config.LevelButtonHeight}
		x += config.LevelButtonWidth + config.LevelButtonGap
	}
	return s
}

func NewLevelScene(level session.Level, env session.Env) (*LevelScene, error) {
	sess, err := session.New(level, env)
	if err != nil {
		return nil, err
	}
	return &LevelScene{Background: background(env), Session: sess}, nil
}

func NewGameOver(level session.Level, score int, env session.Env) *GameOver {
	return &GameOver{
		Background: background(env),
		Level:      level,
		Score:      score,
		Continue:   utils.RectOf(config.ContinueButton),
		Quit:       utils.RectOf(config.OverQuitButton),
	}
}

// Transition 根据当前场景和事件给出下一个场景，返回 nil 表示结束游戏。
// 没有匹配的事件一律原样返回当前场景。
func Transition(s Scene, ev Event, env session.Env) (Scene, error) {
	if ev.Type == Quit {
		return nil, nil
	}
	switch sc := s.(type) {
	case *MainMenu:
		if ev.Type != PointerDown {
			return sc, nil
		}
		if sc.Start.Contains(ev.Pos) {
			env.Cues.Play(cue.Correct)
			return NewLevelSelect(env), nil
		}
		if sc.Quit.Contains(ev.Pos) {
			return nil, nil
		}
		return sc, nil

	case *LevelSelect:
		if ev.Type != PointerDown {
			return sc, nil
		}
		for i, r := range sc.Buttons {
			if r.Contains(ev.Pos) {
				return NewLevelScene(session.Level(i+1), env)
			}
		}
		return sc, nil

	case *LevelScene:
		var (
			out session.Outcome
			err error
		)
		switch ev.Type {
		case PointerDown:
			out, err = sc.Session.Pop(ev.Pos)
		case Tick:
			out, err = sc.Session.Tick()
		}
		if err != nil {
			return sc, err
		}
		if out == session.Over {
			return NewGameOver(sc.Session.Level(), sc.Session.Score(), env), nil
		}
		return sc, nil

	case *GameOver:
		if ev.Type != PointerDown {
			return sc, nil
		}
		if sc.Continue.Contains(ev.Pos) {
			return NewMainMenu(env), nil
		}
		if sc.Quit.Contains(ev.Pos) {
			return nil, nil
		}
		return sc, nil
	}

	log.Printf("scene: unhandled scene %T, staying put", s)
	return s, nil
}
