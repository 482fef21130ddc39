package config

import "time"

type Mode int

const (
	ModeMainMenu Mode = iota
	ModeLevelSelect
	ModeLevel
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "MainMenu"
	case ModeLevelSelect:
		return "LevelSelect"
	case ModeLevel:
		return "Level"
	case ModeGameOver:
		return "GameOver"
	}
	return "Unknown"
}

const (
	ScreenWidth   = 800
	ScreenHeight  = 600
	TitleFontSize = FontSize * 1.5
	FontSize      = 24
	Backgrounds   = 5 // 可选背景数量

	Credit = "Font: Press Start 2P  Sounds: Ebitengine"
)

// 气球的布局：从左到右排列，上下往返
const (
	BalloonStartX  = 50
	BalloonStartY  = 300
	BalloonWidth   = 80
	BalloonHeight  = 120
	BalloonSpacing = 120
	BalloonCount   = 6
)

// 按钮区域，{x, y, w, h}
var (
	StartButton    = [4]float64{300, 250, 200, 100}
	MenuQuitButton = [4]float64{700, 10, 90, 50}
	ContinueButton = [4]float64{300, 400, 200, 50}
	OverQuitButton = [4]float64{550, 400, 200, 50}
)

const (
	LevelButtonWidth  = 120
	LevelButtonHeight = 80
	LevelButtonStartX = 69
	LevelButtonGap    = 20
	LevelButtonY      = (ScreenHeight - LevelButtonHeight) / 2
	LevelCount        = 5
)

const (
	HeartWidth = 40
	HeartX     = 700
	HeartY     = 10
)

// Tuning 是可以在运行时通过 YAML 覆盖的游戏参数
type Tuning struct {
	Lives           int           `yaml:"lives"`
	AddDuration     time.Duration `yaml:"add_duration"`
	SubDuration     time.Duration `yaml:"sub_duration"`
	MulDuration     time.Duration `yaml:"mul_duration"`
	DivDuration     time.Duration `yaml:"div_duration"`
	BalloonTop      float64       `yaml:"balloon_top"`
	BalloonBottom   float64       `yaml:"balloon_bottom"`
	BalloonStep     float64       `yaml:"balloon_step"`
	ChoiceMin       int           `yaml:"choice_min"`
	ChoiceMax       int           `yaml:"choice_max"`
	ChoiceRetries   int           `yaml:"choice_retries"`
	FramesPerSecond int           `yaml:"fps"`
}

func Default() Tuning {
	return Tuning{
		Lives:           3,
		AddDuration:     5 * time.Second,
		SubDuration:     5 * time.Second,
		MulDuration:     10 * time.Second,
		DivDuration:     10 * time.Second,
		BalloonTop:      200,
		BalloonBottom:   400,
		BalloonStep:     1,
		ChoiceMin:       1,
		ChoiceMax:       198,
		ChoiceRetries:   10000,
		FramesPerSecond: 60,
	}
}
