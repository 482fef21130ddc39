package scene

import (
	"math/rand"
	"testing"
	"time"

	"aritmath/content/arith"
	"aritmath/content/config"
	"aritmath/content/cue"
	"aritmath/content/session"
	"aritmath/content/utils"
)

type fakeClock struct{ ms int64 }

func (c *fakeClock) Now() int64 { return c.ms }

func testEnv(seed int64) (session.Env, *fakeClock, *cue.Recorder) {
	clock := &fakeClock{}
	rec := &cue.Recorder{}
	return session.Env{
		Rand:   rand.New(rand.NewSource(seed)),
		Clock:  clock,
		Best:   session.NewBestScores(),
		Cues:   rec,
		Tuning: config.Default(),
	}, clock, rec
}

func click(r utils.Rect) Event {
	c := r.Center()
	return PointerAt(c[0], c[1])
}

func mustHandle(t *testing.T, m *Machine, ev Event) {
	t.Helper()
	if err := m.Handle(ev); err != nil {
		t.Fatalf("Handle(%+v): %v", ev, err)
	}
}

func enterLevel(t *testing.T, m *Machine, level session.Level) *LevelScene {
	t.Helper()
	mustHandle(t, m, click(m.Current().(*MainMenu).Start))
	mustHandle(t, m, click(m.Current().(*LevelSelect).Buttons[level-1]))
	ls, ok := m.Current().(*LevelScene)
	if !ok {
		t.Fatalf("current = %T, want *LevelScene", m.Current())
	}
	return ls
}

func balloonClick(t *testing.T, s *session.Session, correct bool) Event {
	t.Helper()
	for _, b := range s.Balloons() {
		if (b.Answer == s.Operation().Answer) == correct {
			return click(b.Rect())
		}
	}
	t.Fatalf("no balloon with correct=%v", correct)
	return Event{}
}

func TestMachineStartsAtMainMenu(t *testing.T) {
	env, _, _ := testEnv(1)
	m := NewMachine(env)
	if m.Current().Mode() != config.ModeMainMenu || m.Done() {
		t.Fatalf("initial scene %v", m.Current().Mode())
	}
}

func TestMainMenuStartButton(t *testing.T) {
	env, _, rec := testEnv(1)
	m := NewMachine(env)
	mustHandle(t, m, click(m.Current().(*MainMenu).Start))
	if _, ok := m.Current().(*LevelSelect); !ok {
		t.Fatalf("current = %T, want *LevelSelect", m.Current())
	}
	if len(rec.Played) != 1 || rec.Played[0] != cue.Correct {
		t.Errorf("cues = %v", rec.Played)
	}
}

func TestMainMenuMissLeavesSceneUnchanged(t *testing.T) {
	env, _, _ := testEnv(1)
	m := NewMachine(env)
	before := m.Current().(*MainMenu)
	copied := *before

	for _, ev := range []Event{PointerAt(10, 590), PointerAt(600, 300), TickEvent} {
		mustHandle(t, m, ev)
		after, ok := m.Current().(*MainMenu)
		if !ok || after != before {
			t.Fatalf("event %+v moved scene to %T", ev, m.Current())
		}
		if *after != copied {
			t.Fatalf("event %+v mutated main menu state", ev)
		}
	}
}

func TestMainMenuQuitButtonTerminates(t *testing.T) {
	env, _, _ := testEnv(1)
	m := NewMachine(env)
	mustHandle(t, m, click(m.Current().(*MainMenu).Quit))
	if !m.Done() {
		t.Fatal("quit button did not terminate")
	}
	// 结束之后的事件被忽略
	mustHandle(t, m, TickEvent)
	if m.Current() != nil {
		t.Error("terminated machine changed state")
	}
}

func TestQuitEventTerminatesEveryScene(t *testing.T) {
	env, _, _ := testEnv(2)
	scenes := []Scene{
		NewMainMenu(env),
		NewLevelSelect(env),
		NewGameOver(session.Level1, 3, env),
	}
	ls, err := NewLevelScene(session.Level2, env)
	if err != nil {
		t.Fatal(err)
	}
	scenes = append(scenes, ls)

	for _, s := range scenes {
		next, err := Transition(s, QuitEvent, env)
		if err != nil || next != nil {
			t.Errorf("%v: Quit returned %v, %v", s.Mode(), next, err)
		}
	}
}

func TestLevelSelectButtons(t *testing.T) {
	for level := session.Level1; level <= session.Level5; level++ {
		env, _, _ := testEnv(int64(level))
		ls := NewLevelSelect(env)
		next, err := Transition(ls, click(ls.Buttons[level-1]), env)
		if err != nil {
			t.Fatal(err)
		}
		sc, ok := next.(*LevelScene)
		if !ok {
			t.Fatalf("button %d: next = %T", level, next)
		}
		if sc.Session.Level() != level || sc.Session.Lives() != 3 || sc.Session.Score() != 0 {
			t.Errorf("button %d: level %v lives %d score %d", level, sc.Session.Level(), sc.Session.Lives(), sc.Session.Score())
		}
	}
}

func TestLevelSelectMissStays(t *testing.T) {
	env, _, _ := testEnv(1)
	ls := NewLevelSelect(env)
	for _, ev := range []Event{PointerAt(5, 5), PointerAt(400, 100), TickEvent} {
		next, err := Transition(ls, ev, env)
		if err != nil || next != Scene(ls) {
			t.Errorf("event %+v: next %T err %v", ev, next, err)
		}
	}
}

func TestLevelSelectButtonLayout(t *testing.T) {
	env, _, _ := testEnv(1)
	ls := NewLevelSelect(env)
	for i, r := range ls.Buttons {
		wantX := float64(config.LevelButtonStartX + i*(config.LevelButtonWidth+config.LevelButtonGap))
		if r.X != wantX || r.Y != config.LevelButtonY {
			t.Errorf("button %d at (%v, %v)", i+1, r.X, r.Y)
		}
		if r.X+r.W > config.ScreenWidth {
			t.Errorf("button %d off screen", i+1)
		}
	}
}

func TestCorrectPopEndToEnd(t *testing.T) {
	env, clock, _ := testEnv(3)
	m := NewMachine(env)
	ls := enterLevel(t, m, session.Level1)
	s := ls.Session

	clock.ms += 2000
	mustHandle(t, m, balloonClick(t, s, true))

	if m.Current() != Scene(ls) {
		t.Fatalf("correct pop left the level scene: %T", m.Current())
	}
	snap := m.Snapshot()
	if snap.Score != 1 || snap.Best != 1 || snap.Lives != 3 {
		t.Errorf("snapshot score %d best %d lives %d", snap.Score, snap.Best, snap.Lives)
	}
	if len(snap.Balloons) != arith.ChoiceCount {
		t.Fatalf("balloons = %d", len(snap.Balloons))
	}
	seen := map[int]bool{}
	for _, b := range snap.Balloons {
		if seen[b.Answer] {
			t.Fatalf("duplicate answer %d", b.Answer)
		}
		seen[b.Answer] = true
	}
	if !seen[s.Operation().Answer] {
		t.Error("new round lacks its correct answer")
	}
	if snap.Remaining != 5000*time.Millisecond {
		t.Errorf("remaining = %v, want 5s", snap.Remaining)
	}
	if snap.Question != s.Operation().String() {
		t.Errorf("question = %q", snap.Question)
	}
}

func TestThreeWrongPopsReachGameOver(t *testing.T) {
	env, _, _ := testEnv(4)
	m := NewMachine(env)
	ls := enterLevel(t, m, session.Level2)

	mustHandle(t, m, balloonClick(t, ls.Session, true))
	mustHandle(t, m, balloonClick(t, ls.Session, true))
	for i := 0; i < 2; i++ {
		mustHandle(t, m, balloonClick(t, ls.Session, false))
		if m.Current() != Scene(ls) {
			t.Fatalf("left level after %d wrong pops", i+1)
		}
	}
	mustHandle(t, m, balloonClick(t, ls.Session, false))

	over, ok := m.Current().(*GameOver)
	if !ok {
		t.Fatalf("current = %T, want *GameOver", m.Current())
	}
	if over.Score != 2 || over.Level != session.Level2 {
		t.Errorf("game over score %d level %v", over.Score, over.Level)
	}
	if snap := m.Snapshot(); snap.Best != 2 || snap.Mode != config.ModeGameOver {
		t.Errorf("snapshot %+v", snap)
	}
}

func TestTimeoutsReachGameOver(t *testing.T) {
	env, clock, _ := testEnv(5)
	m := NewMachine(env)
	enterLevel(t, m, session.Level3)

	for i := 0; i < 3; i++ {
		clock.ms += 10000
		if err := m.Step(nil); err != nil {
			t.Fatal(err)
		}
	}
	over, ok := m.Current().(*GameOver)
	if !ok {
		t.Fatalf("current = %T, want *GameOver", m.Current())
	}
	if over.Score != 0 {
		t.Errorf("score = %d", over.Score)
	}
}

func TestGameOverButtons(t *testing.T) {
	env, _, _ := testEnv(6)
	over := NewGameOver(session.Level1, 4, env)

	next, _ := Transition(over, PointerAt(5, 5), env)
	if next != Scene(over) {
		t.Errorf("miss moved to %T", next)
	}
	next, _ = Transition(over, click(over.Continue), env)
	if _, ok := next.(*MainMenu); !ok {
		t.Errorf("continue moved to %T", next)
	}
	next, _ = Transition(over, click(over.Quit), env)
	if next != nil {
		t.Errorf("quit moved to %T", next)
	}
}

func TestStepProcessesEventsBeforeTick(t *testing.T) {
	env, _, _ := testEnv(7)
	m := NewMachine(env)
	start := click(m.Current().(*MainMenu).Start)
	if err := m.Step([]Event{start}); err != nil {
		t.Fatal(err)
	}
	ls := m.Current().(*LevelSelect)
	if err := m.Step([]Event{click(ls.Buttons[0])}); err != nil {
		t.Fatal(err)
	}
	sc := m.Current().(*LevelScene)
	// 进入关卡的同一帧已经推进了一次 Tick
	for i, b := range sc.Session.Balloons() {
		if b.Pos[1] == config.BalloonStartY {
			t.Errorf("balloon %d not ticked", i)
		}
	}

	if err := m.Step([]Event{QuitEvent, TickEvent}); err != nil {
		t.Fatal(err)
	}
	if !m.Done() {
		t.Error("quit inside a step did not terminate")
	}
}

func TestUnknownSceneIsNoop(t *testing.T) {
	env, _, _ := testEnv(8)
	var s Scene = stranger{}
	next, err := Transition(s, PointerAt(1, 1), env)
	if err != nil || next != s {
		t.Errorf("next %v err %v", next, err)
	}
}

type stranger struct{}

func (stranger) Mode() config.Mode { return config.Mode(99) }

type scriptedInput struct {
	frames [][]Event
}

func (s *scriptedInput) Poll() []Event {
	if len(s.frames) == 0 {
		return nil
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}

type recordingRenderer struct {
	modes []config.Mode
}

func (r *recordingRenderer) Draw(snap Snapshot) {
	r.modes = append(r.modes, snap.Mode)
}

func TestRunUntilQuit(t *testing.T) {
	tuning := config.Default()
	tuning.FramesPerSecond = 1000

	menu := NewMainMenu(session.Env{Rand: rand.New(rand.NewSource(1))})
	ls := NewLevelSelect(session.Env{Rand: rand.New(rand.NewSource(1))})
	input := &scriptedInput{frames: [][]Event{
		nil,
		{click(menu.Start)},
		{click(ls.Buttons[4])},
		nil,
		{QuitEvent},
	}}
	rend := &recordingRenderer{}
	rec := &cue.Recorder{}

	err := Run(Bundle{
		Renderer: rend,
		Cues:     rec,
		Clock:    &fakeClock{},
		Input:    input,
		Tuning:   tuning,
		Rand:     rand.New(rand.NewSource(9)),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []config.Mode{config.ModeMainMenu, config.ModeLevelSelect, config.ModeLevel, config.ModeLevel}
	if len(rend.modes) != len(want) {
		t.Fatalf("drew %v, want %v", rend.modes, want)
	}
	for i := range want {
		if rend.modes[i] != want[i] {
			t.Errorf("frame %d drew %v, want %v", i, rend.modes[i], want[i])
		}
	}
}

func TestRunWithoutTuningUsesDefaults(t *testing.T) {
	rend := &recordingRenderer{}
	err := Run(Bundle{
		Renderer: rend,
		Cues:     cue.Nop,
		Clock:    &fakeClock{},
		Input:    &scriptedInput{frames: [][]Event{nil, {QuitEvent}}},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rend.modes) != 1 || rend.modes[0] != config.ModeMainMenu {
		t.Errorf("drew %v, want one main menu frame", rend.modes)
	}
}

func TestRunRejectsInvalidTuning(t *testing.T) {
	tuning := config.Default()
	tuning.FramesPerSecond = 0
	err := Run(Bundle{
		Renderer: &recordingRenderer{},
		Clock:    &fakeClock{},
		Input:    &scriptedInput{frames: [][]Event{{QuitEvent}}},
		Tuning:   tuning,
	})
	if err == nil {
		t.Fatal("expected error for zero fps")
	}
}

func TestMachineWithoutTuningStartsFullSession(t *testing.T) {
	m := NewMachine(session.Env{Rand: rand.New(rand.NewSource(3)), Clock: &fakeClock{}})
	ls := NewLevelSelect(session.Env{Rand: rand.New(rand.NewSource(1))})
	for _, ev := range []Event{click(m.Current().(*MainMenu).Start), click(ls.Buttons[0])} {
		if err := m.Handle(ev); err != nil {
			t.Fatal(err)
		}
	}
	snap := m.Snapshot()
	if snap.Mode != config.ModeLevel || snap.Lives != config.Default().Lives || len(snap.Balloons) != config.BalloonCount {
		t.Errorf("snapshot = %+v", snap)
	}
}
