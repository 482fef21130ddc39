package session

import (
	"fmt"
	"log"
	"math/rand"

	"aritmath/content/arith"
	"aritmath/content/balloon"
	"aritmath/content/config"
	"aritmath/content/cue"
	"aritmath/content/timer"

	"github.com/google/uuid"
	"golang.org/x/image/math/f64"
)

// Env 是会话依赖的外部能力，由场景机在创建会话时注入
type Env struct {
	Rand   *rand.Rand
	Clock  timer.Clock
	Best   *BestScores
	Cues   cue.Player
	Tuning config.Tuning
}

type Outcome int

const (
	None Outcome = iota
	Correct
	Incorrect
	Timeout
	Over // 生命值耗尽
)

func (o Outcome) String() string {
	switch o {
	case None:
		return "none"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Timeout:
		return "timeout"
	case Over:
		return "over"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

type Session struct {
	ID    uuid.UUID
	level Level
	score int
	lives int
	op    arith.Operation
	field *balloon.Field
	timer *timer.Round
	env   Env
}

func New(level Level, env Env) (*Session, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("session: invalid level %d", int(level))
	}
	if env.Cues == nil {
		env.Cues = cue.Nop
	}
	if env.Best == nil {
		env.Best = NewBestScores()
	}
	tuning, err := config.Resolve(env.Tuning)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	env.Tuning = tuning
	s := &Session{
		ID:    uuid.New(),
		level: level,
		lives: env.Tuning.Lives,
		env:   env,
	}
	s.timer = timer.NewRound(env.Clock, 0)
	if err := s.newRound(); err != nil {
		return nil, err
	}
	log.Printf("session %s: %s started", s.ID, level)
	return s, nil
}

// newRound 出一道新题：新的算式、新的干扰项、新的气球、重置计时
func (s *Session) newRound() error {
	kind := s.level.Kind(s.env.Rand)
	op := arith.Generate(s.env.Rand, kind)
	answers, err := arith.Choices(s.env.Rand, op.Answer, arith.ChoiceRange{
		Min:        s.env.Tuning.ChoiceMin,
		Max:        s.env.Tuning.ChoiceMax,
		MaxRetries: s.env.Tuning.ChoiceRetries,
	})
	if err != nil {
		return fmt.Errorf("session %s: new round: %w", s.ID, err)
	}
	s.op = op
	s.field = balloon.NewField(answers, balloon.BoundsFrom(s.env.Tuning))
	s.timer.ResetWith(RoundDuration(s.env.Tuning, kind))
	return nil
}

// Pop 处理一次点击，没有点中任何气球时返回 None
func (s *Session) Pop(p f64.Vec2) (Outcome, error) {
	if s.Done() {
		return Over, nil
	}
	idx, ok := s.field.Hit(p)
	if !ok {
		return None, nil
	}
	s.env.Cues.Play(cue.Pop)

	if s.field.At(idx).Answer == s.op.Answer {
		s.env.Cues.Play(cue.Correct)
		s.score++
		if s.env.Best.Submit(s.level, s.score) {
			log.Printf("session %s: new best %d on %s", s.ID, s.score, s.level)
		}
		return Correct, s.newRound()
	}

	s.env.Cues.Play(cue.Incorrect)
	s.field.Remove(idx)
	if s.loseLife() {
		return Over, nil
	}
	return Incorrect, nil
}

// Tick 每帧调用一次：先检查超时，再移动气球
func (s *Session) Tick() (Outcome, error) {
	if s.Done() {
		return Over, nil
	}
	out := None
	if s.timer.Expired() {
		s.env.Cues.Play(cue.Incorrect)
		if s.loseLife() {
			return Over, nil
		}
		if err := s.newRound(); err != nil {
			return Timeout, err
		}
		out = Timeout
	}
	s.field.Tick()
	return out, nil
}

func (s *Session) loseLife() bool {
	s.lives--
	if s.lives > 0 {
		return false
	}
	s.lives = 0
	log.Printf("session %s: %s over with score %d", s.ID, s.level, s.score)
	return true
}

func (s *Session) Done() bool {
	return s.lives <= 0
}

func (s *Session) Level() Level {
	return s.level
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Lives() int {
	return s.lives
}

func (s *Session) Best() int {
	return s.env.Best.Get(s.level)
}

func (s *Session) Operation() arith.Operation {
	return s.op
}

func (s *Session) Balloons() []balloon.Balloon {
	return s.field.Balloons()
}

func (s *Session) Timer() *timer.Round {
	return s.timer
}
