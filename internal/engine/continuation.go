package engine

import "aimax/internal/aimax"

const (
	continuationCapture = 1000
	continuationAdvance = 10
)

// ChooseContinuation 轀的第二步：优先吃子，其次往前走得远；同分取第一个
func (e *Engine) ChooseContinuation(b *aimax.Board, pending aimax.Square, side aimax.Side) (aimax.Move, bool) {
	moves := b.ContinuationMoves(pending, side)
	if len(moves) == 0 {
		return aimax.NoMove, false
	}
	best := moves[0]
	bestScore := -scoreInf
	for _, m := range moves {
		score := 0
		if target := b.Squares[m.To]; !target.IsEmpty() && target.Side != side {
			score += continuationCapture
		}
		adv := m.To.Row() - m.From.Row()
		if side == aimax.Black {
			adv = -adv
		}
		score += adv * continuationAdvance
		if score > bestScore {
			best, bestScore = m, score
		}
	}
	return best, true
}
