package engine

import "aimax/internal/aimax"

// moveLine 把对局历史和当前搜索栈看成一条连续的走法序列
type moveLine struct {
	history []aimax.Move
	stack   []aimax.Move
}

func newMoveLine(history []aimax.Move, depth int) *moveLine {
	return &moveLine{
		history: history,
		stack:   make([]aimax.Move, 0, depth+1),
	}
}

func (l *moveLine) Len() int { return len(l.history) + len(l.stack) }

// At 越界返回 NoMove
func (l *moveLine) At(i int) aimax.Move {
	if i < 0 || i >= l.Len() {
		return aimax.NoMove
	}
	if i < len(l.history) {
		return l.history[i]
	}
	return l.stack[i-len(l.history)]
}

func (l *moveLine) push(m aimax.Move) { l.stack = append(l.stack, m) }
func (l *moveLine) pop()              { l.stack = l.stack[:len(l.stack)-1] }

const (
	reversePenaltyBase = 100000
	shufflePenaltyUnit = 50000

	rootReversePenalty       = 50000
	rootDoubleReversePenalty = 500000
	rootSamePiecePenalty     = 30000
)

// lineRepetition 叶子节点的重复惩罚，按红方视角返回，惩罚记在走最后一步的一方头上
func lineRepetition(b *aimax.Board, l *moveLine) int {
	if len(l.stack) == 0 || l.Len() < 2 {
		return 0
	}
	last := l.Len() - 1
	m0 := l.At(last)
	m2 := l.At(last - 2)
	m4 := l.At(last - 4)
	m6 := l.At(last - 6)

	penalty := 0
	if m0.Reverses(m2) {
		count := 1
		if m2.Reverses(m4) {
			count = 2
			if m4.Reverses(m6) {
				count = 3
			}
		}
		p := reversePenaltyBase
		for i := 1; i < count; i++ {
			p *= 10
		}
		penalty += p
	}

	if !m2.IsNone() && m2.To == m0.From {
		repeat := 1
		if !m4.IsNone() && m4.To == m2.From {
			repeat = 2
			if !m6.IsNone() && m6.To == m4.From {
				repeat = 3
			}
		}
		if repeat >= 2 {
			penalty += shufflePenaltyUnit * repeat
		}
	}

	switch b.Squares[m0.To].Color() {
	case aimax.Red:
		return -penalty
	case aimax.Black:
		return penalty
	}
	return 0
}

// repetitionPenalty 走 m 之前的重复程度（绝对值），用于排序和根节点打分
func repetitionPenalty(m aimax.Move, l *moveLine) int {
	n := l.Len()
	if n < 2 {
		return 0
	}
	myLast := l.At(n - 2)
	mySecondLast := l.At(n - 4)

	penalty := 0
	if m.Reverses(myLast) {
		penalty += rootReversePenalty
		if myLast.Reverses(mySecondLast) {
			penalty += rootDoubleReversePenalty
		}
	}

	count := 0
	pos := m.From
	for i := n - 2; i >= 0 && count < 5; i -= 2 {
		prev := l.At(i)
		if prev.To != pos {
			break
		}
		count++
		pos = prev.From
	}
	if count >= 2 {
		penalty += rootSamePiecePenalty * count
	}
	return penalty
}
