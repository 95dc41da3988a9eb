package engine

import "aimax/internal/aimax"

// dynamicDepth 子越少搜得越深
func dynamicDepth(b *aimax.Board, base int) int {
	red, black := b.PieceCount()
	total := red + black
	switch {
	case red <= 5 || black <= 5 || total < 10:
		return 8
	case total < 16:
		return 7
	case total < 18:
		return 6
	}
	return base
}

func (e *Engine) searchDepth(b *aimax.Board) int {
	if e.cfg.FixedDepth > 0 {
		return e.cfg.FixedDepth
	}
	d := dynamicDepth(b, e.cfg.BaseDepth)
	if e.cfg.MaxDepth > 0 && d > e.cfg.MaxDepth {
		d = e.cfg.MaxDepth
	}
	return d
}
