package engine

import (
	"sort"

	"aimax/internal/aimax"
)

const (
	captureBase  = 1_000_000
	killerScore1 = 900_000
	killerScore2 = 800_000
	maxKillerPly = 16
)

// heuristicTables 杀手走法按剩余深度存两个，历史表按 from/to 累加
type heuristicTables struct {
	killers [maxKillerPly + 1][2]aimax.Move
	history [aimax.NumSquares][aimax.NumSquares]int
}

func (h *heuristicTables) resetKillers() {
	for i := range h.killers {
		h.killers[i][0] = aimax.NoMove
		h.killers[i][1] = aimax.NoMove
	}
}

func (h *heuristicTables) reset() {
	h.resetKillers()
	h.history = [aimax.NumSquares][aimax.NumSquares]int{}
}

// recordCutoff 不吃子的走法引起剪枝：记为杀手（新的在前、不重复），历史分加 depth²
func (h *heuristicTables) recordCutoff(m aimax.Move, depth int) {
	if depth >= 0 && depth <= maxKillerPly {
		k := &h.killers[depth]
		if !k[0].SameSquares(m) {
			k[1] = k[0]
			k[0] = m
		}
	}
	h.history[m.From][m.To] += depth * depth
}

func (e *Engine) scoreMove(b *aimax.Board, m aimax.Move, depth int, line *moveLine) int {
	score := 0
	target := b.Squares[m.To]
	if !target.IsEmpty() {
		victim := e.eval.values.Value(target.Kind)
		attacker := e.eval.values.Value(b.Squares[m.From].Kind)
		score = captureBase + victim*10 - attacker
	} else {
		if depth >= 0 && depth <= maxKillerPly {
			if m.SameSquares(e.tables.killers[depth][0]) {
				score = killerScore1
			} else if m.SameSquares(e.tables.killers[depth][1]) {
				score = killerScore2
			}
		}
		if score == 0 {
			score = e.tables.history[m.From][m.To]
		}
	}
	if p := repetitionPenalty(m, line); p != 0 {
		score -= p / 10
	}
	return score
}

// orderMoves 稳定排序，分数高的在前
func (e *Engine) orderMoves(b *aimax.Board, moves []aimax.Move, depth int, line *moveLine) {
	scores := make([]int, len(moves))
	idx := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = e.scoreMove(b, m, depth, line)
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return scores[idx[i]] > scores[idx[j]] })
	sorted := make([]aimax.Move, len(moves))
	for i, j := range idx {
		sorted[i] = moves[j]
	}
	copy(moves, sorted)
}
