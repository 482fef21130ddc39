package cue

type ID int

const (
	Correct ID = iota
	Incorrect
	Pop
)

func (id ID) String() string {
	switch id {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Pop:
		return "pop"
	}
	return "unknown"
}

// Player 播放音效，只负责触发，不等待播放结束
type Player interface {
	Play(id ID)
}

type nop struct{}

func (nop) Play(ID) {}

// Nop 用于无声环境，例如测试或者没有音频设备的终端
var Nop Player = nop{}

// Recorder 记录所有触发过的音效，便于检查状态转换时播放了什么
type Recorder struct {
	Played []ID
}

func (r *Recorder) Play(id ID) {
	r.Played = append(r.Played, id)
}

func (r *Recorder) Reset() {
	r.Played = r.Played[:0]
}
