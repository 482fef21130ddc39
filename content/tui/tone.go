package main

import (
	"math"
	"math/rand"
	"time"

	"aritmath/content/cue"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type wave int

const (
	sine wave = iota
	square
	noise
)

// oscillator 生成固定时长的波形，结束后返回 ok=false
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     wave
	rng      *rand.Rand
}

func newOscillator(freq float64, d time.Duration, w wave) beep.Streamer {
	return &oscillator{freq: freq, length: sampleRate.N(d), wave: w, rng: rand.New(rand.NewSource(int64(freq)))}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case sine:
			v = math.Sin(2 * math.Pi * o.phase)
		case square:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case noise:
			v = o.rng.Float64()*2 - 1
		}
		// 线性淡出，避免结尾的爆音
		v *= 1 - float64(o.position)/float64(o.length)
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// toneCues 用合成音实现 cue.Player，不依赖任何音频文件
type toneCues struct{}

func newToneCues() (cue.Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	return toneCues{}, nil
}

func (toneCues) Play(id cue.ID) {
	var s beep.Streamer
	switch id {
	case cue.Correct:
		s = beep.Seq(
			newOscillator(660, 80*time.Millisecond, sine),
			newOscillator(990, 120*time.Millisecond, sine),
		)
	case cue.Incorrect:
		s = newOscillator(140, 220*time.Millisecond, square)
	case cue.Pop:
		s = newOscillator(1, 40*time.Millisecond, noise)
	default:
		return
	}
	speaker.Play(&effects.Volume{Streamer: s, Base: 2, Volume: -2})
}
