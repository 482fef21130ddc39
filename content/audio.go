package main

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"math/rand"

	"aritmath/content/cue"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	raudio "github.com/hajimehoshi/ebiten/v2/examples/resources/audio"
)

const sampleRate = 48000

var (
	audioContext *audio.Context
)

func InitAudio() {
	if audioContext == nil {
		audioContext = audio.NewContext(sampleRate)
	}
}

// cuePlayer 把音效编号映射到预先解码好的播放器
type cuePlayer struct {
	players map[cue.ID]*audio.Player
	music   *audio.Player
}

func newCuePlayer() *cuePlayer {
	p := &cuePlayer{players: make(map[cue.ID]*audio.Player)}

	jumpD, err := vorbis.DecodeWithoutResampling(bytes.NewReader(raudio.Jump_ogg))
	if err != nil {
		log.Fatal(err)
	}
	if p.players[cue.Correct], err = audioContext.NewPlayer(jumpD); err != nil {
		log.Fatal(err)
	}

	jabD, err := wav.DecodeWithoutResampling(bytes.NewReader(raudio.Jab_wav))
	if err != nil {
		log.Fatal(err)
	}
	if p.players[cue.Incorrect], err = audioContext.NewPlayer(jabD); err != nil {
		log.Fatal(err)
	}

	p.players[cue.Pop] = audioContext.NewPlayerFromBytes(popPCM())

	// 背景音乐缺失不影响游戏
	musicD, err := vorbis.DecodeWithoutResampling(bytes.NewReader(raudio.Ragtime_ogg))
	if err != nil {
		log.Println("background music disabled:", err)
		return p
	}
	if p.music, err = audioContext.NewPlayer(audio.NewInfiniteLoop(musicD, musicD.Length())); err != nil {
		log.Println("background music disabled:", err)
		p.music = nil
	}
	return p
}

func (p *cuePlayer) Play(id cue.ID) {
	pl, ok := p.players[id]
	if !ok {
		return
	}
	if err := pl.Rewind(); err != nil {
		log.Println("rewind", id, err)
		return
	}
	pl.Play()
}

func (p *cuePlayer) PlayMusic() {
	if p.music == nil {
		return
	}
	p.music.SetVolume(0.4)
	p.music.Play()
}

// popPCM 合成一段衰减的噪声，16 位小端双声道
func popPCM() []byte {
	const n = sampleRate / 20
	r := rand.New(rand.NewSource(1))
	buf := bytes.NewBuffer(make([]byte, 0, n*4))
	for i := 0; i < n; i++ {
		env := math.Exp(-float64(i) / (n / 8))
		v := int16((r.Float64()*2 - 1) * env * 0.6 * math.MaxInt16)
		binary.Write(buf, binary.LittleEndian, [2]int16{v, v})
	}
	return buf.Bytes()
}
