package engine

import (
	"time"

	"aimax/internal/aimax"
)

// minimax alpha-beta，红方为极大方。line 是历史加上当前搜索栈
func (e *Engine) minimax(b *aimax.Board, depth, alpha, beta int, maximizing bool, line *moveLine) int {
	e.nodes++
	if depth <= 0 {
		return e.eval.Evaluate(b, depth, line)
	}

	side := aimax.Black
	if maximizing {
		side = aimax.Red
	}
	moves := b.SafeMoves(side)
	if len(moves) == 0 {
		if b.InCheck(side) {
			if maximizing {
				return -mateScore
			}
			return mateScore
		}
		return 0
	}
	e.orderMoves(b, moves, depth, line)

	if maximizing {
		best := -scoreInf
		for _, m := range moves {
			child := b.Apply(m)
			line.push(m)
			score := e.minimax(&child, depth-1, alpha, beta, false, line)
			line.pop()
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				e.noteCutoff(b, m, depth)
				break
			}
		}
		return best
	}

	best := scoreInf
	for _, m := range moves {
		child := b.Apply(m)
		line.push(m)
		score := e.minimax(&child, depth-1, alpha, beta, true, line)
		line.pop()
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			e.noteCutoff(b, m, depth)
			break
		}
	}
	return best
}

func (e *Engine) noteCutoff(b *aimax.Board, m aimax.Move, depth int) {
	if b.Squares[m.To].IsEmpty() {
		e.tables.recordCutoff(m, depth)
	}
}

// Search 根节点搜索。history 是到目前为止的对局着法（只读）
func (e *Engine) Search(b *aimax.Board, side aimax.Side, history []aimax.Move) SearchResult {
	start := time.Now()
	e.nodes = 0
	e.tables.resetKillers()

	moves := b.SafeMoves(side)
	if len(moves) == 0 {
		return SearchResult{
			Checkmated: b.InCheck(side),
			TimeUsed:   time.Since(start),
		}
	}

	depth := e.searchDepth(b)
	e.logf("%s 思考中，搜索深度 %d", side, depth)

	moves = filterReversals(moves, history)
	line := newMoveLine(history, depth)
	e.orderMoves(b, moves, depth, line)

	maximizing := side == aimax.Red
	alpha, beta := -scoreInf, scoreInf
	bestMove := moves[0]
	bestScore := scoreInf
	if maximizing {
		bestScore = -scoreInf
	}

	for i, m := range moves {
		if i > 0 && i%e.cfg.YieldEvery == 0 {
			e.cfg.Yield()
		}
		penalty := repetitionPenalty(m, line)

		child := b.Apply(m)
		line.push(m)
		score := e.minimax(&child, depth-1, alpha, beta, !maximizing, line)
		line.pop()

		update := false
		if maximizing {
			score -= penalty
			if score > bestScore {
				bestScore, bestMove, update = score, m, true
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			score += penalty
			if score < bestScore {
				bestScore, bestMove, update = score, m, true
			}
			if bestScore < beta {
				beta = bestScore
			}
		}
		if update {
			e.logf("  考虑 %s (%d,%d)->(%d,%d) 分数 %d 重复惩罚 %d",
				b.Squares[m.From].Kind, m.From.Row(), m.From.Col(), m.To.Row(), m.To.Col(), score, penalty)
		}
		if beta <= alpha {
			break
		}
	}

	res := SearchResult{
		BestMove: bestMove,
		Found:    true,
		Score:    bestScore,
		Depth:    depth,
		Nodes:    e.nodes,
		TimeUsed: time.Since(start),
	}
	e.logf("思考结束：耗时 %v 节点 %d 最优 (%d,%d)->(%d,%d)",
		res.TimeUsed, res.Nodes, bestMove.From.Row(), bestMove.From.Col(), bestMove.To.Row(), bestMove.To.Col())
	return res
}

// FindBestMove 只要着法；没有合法着法时 ok=false
func (e *Engine) FindBestMove(b *aimax.Board, side aimax.Side, history []aimax.Move) (aimax.Move, bool) {
	res := e.Search(b, side, history)
	if !res.Found {
		return aimax.NoMove, false
	}
	return res.BestMove, true
}

// filterReversals 去掉直接走回上一步的着法；全被去掉时保留原列表
func filterReversals(moves, history []aimax.Move) []aimax.Move {
	if len(history) < 2 {
		return moves
	}
	myLast := history[len(history)-2]
	kept := make([]aimax.Move, 0, len(moves))
	for _, m := range moves {
		if !m.Reverses(myLast) {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return moves
	}
	return kept
}
