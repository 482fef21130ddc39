package arith

import (
	"fmt"
	"math/rand"
)

type Kind int

const (
	Add Kind = iota
	Subtract
	Multiply
	Divide
)

var kinds = []Kind{Add, Subtract, Multiply, Divide}

func (k Kind) Symbol() string {
	switch k {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	}
	return "?"
}

func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Operation 是一道算式，Answer 在生成时就已经算好
type Operation struct {
	Kind   Kind
	A, B   int
	Answer int
}

func (o Operation) String() string {
	return fmt.Sprintf("%d %s %d = ?", o.A, o.Kind.Symbol(), o.B)
}

// RandomKind 混合模式下每一轮等概率抽取运算类型
func RandomKind(r *rand.Rand) Kind {
	return kinds[r.Intn(len(kinds))]
}

// between 返回 [lo, hi] 上的均匀整数
func between(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// Generate 按运算类型出题：
//   - 加法：两个数都在 [1,99]
//   - 减法：被减数在 [10,99]，减数在 [1,被减数-1]，结果不会是负数
//   - 乘法：两个数都在 [1,9]
//   - 除法：除数在 [1,9]，被除数向下取到除数的整数倍，保证整除
func Generate(r *rand.Rand, k Kind) Operation {
	var a, b, ans int
	switch k {
	case Subtract:
		a = between(r, 10, 99)
		b = between(r, 1, a-1)
		ans = a - b
	case Multiply:
		a = between(r, 1, 9)
		b = between(r, 1, 9)
		ans = a * b
	case Divide:
		a = between(r, 10, 99)
		b = between(r, 1, 9)
		a -= a % b
		ans = a / b
	default:
		k = Add
		a = between(r, 1, 99)
		b = between(r, 1, 99)
		ans = a + b
	}
	return Operation{Kind: k, A: a, B: b, Answer: ans}
}
