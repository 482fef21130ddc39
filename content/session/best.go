package session

import "sync"

// BestScores 记录进程运行期间每一关的最高分，所有同关卡的会话共享同一个实例。
// 分数只增不减，进程重启后清零。
type BestScores struct {
	mu     sync.Mutex
	scores map[Level]int
}

func NewBestScores() *BestScores {
	return &BestScores{scores: make(map[Level]int)}
}

func (b *BestScores) Get(l Level) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.scores[l]
}

// Submit 比较并更新，只有超过当前最高分时才写入，返回是否刷新了记录
func (b *BestScores) Submit(l Level, score int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if score <= b.scores[l] {
		return false
	}
	b.scores[l] = score
	return true
}

func (b *BestScores) All() map[Level]int {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[Level]int, len(b.scores))
	for l, s := range b.scores {
		out[l] = s
	}
	return out
}
