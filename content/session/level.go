package session

import (
	"fmt"
	"math/rand"
	"time"

	"aritmath/content/arith"
	"aritmath/content/config"
)

// Level 取值 1..5：加、减、乘、除、混合
type Level int

const (
	Level1 Level = iota + 1
	Level2
	Level3
	Level4
	Level5
)

func (l Level) Valid() bool {
	return l >= Level1 && l <= Level5
}

func (l Level) String() string {
	return fmt.Sprintf("Level%d", int(l))
}

// Kind 返回本轮的运算类型，第 5 关每一轮都重新抽取
func (l Level) Kind(r *rand.Rand) arith.Kind {
	switch l {
	case Level1:
		return arith.Add
	case Level2:
		return arith.Subtract
	case Level3:
		return arith.Multiply
	case Level4:
		return arith.Divide
	}
	return arith.RandomKind(r)
}

// RoundDuration 加减 5 秒，乘除 10 秒（默认值）
func RoundDuration(t config.Tuning, k arith.Kind) time.Duration {
	switch k {
	case arith.Subtract:
		return t.SubDuration
	case arith.Multiply:
		return t.MulDuration
	case arith.Divide:
		return t.DivDuration
	}
	return t.AddDuration
}
