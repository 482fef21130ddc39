package arith

import (
	"errors"
	"fmt"
	"math/rand"
)

const ChoiceCount = 6

var ErrGeneration = errors.New("arith: choice generation did not converge")

// GenerationError 表示干扰项收集超过了重试上限。正常的取值范围下不会发生。
type GenerationError struct {
	Answer    int
	Collected int
	Attempts  int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("arith: collected %d of %d choices for answer %d after %d draws",
		e.Collected, ChoiceCount, e.Answer, e.Attempts)
}

func (e *GenerationError) Unwrap() error { return ErrGeneration }

// ChoiceRange 描述干扰项的抽取范围和重试上限
type ChoiceRange struct {
	Min, Max   int
	MaxRetries int
}

func DefaultChoiceRange() ChoiceRange {
	return ChoiceRange{Min: 1, Max: 198, MaxRetries: 10000}
}

// Choices 返回打乱顺序后的 6 个互不相同的答案，其中正确答案恰好出现一次
func Choices(r *rand.Rand, correct int, cr ChoiceRange) ([]int, error) {
	out := make([]int, 1, ChoiceCount)
	out[0] = correct
	seen := map[int]bool{correct: true}

	attempts := 0
	for len(out) < ChoiceCount {
		if attempts >= cr.MaxRetries {
			return nil, &GenerationError{Answer: correct, Collected: len(out), Attempts: attempts}
		}
		attempts++
		v := between(r, cr.Min, cr.Max)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}

	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out, nil
}
