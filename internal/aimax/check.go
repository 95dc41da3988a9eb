package aimax

// Attacked 判断 sq 是否能被 by 一方某个子的伪合法走法走到。
func (b *Board) Attacked(sq Square, by Side) bool {
	// 将、士、象过不了河，对方九宫里的格子它们够不着
	skipHome := InPalace(sq, by.Opponent())

	var moves []Move
	for s := 0; s < NumSquares; s++ {
		pc := b.Squares[s]
		if pc.IsEmpty() || pc.Side != by {
			continue
		}
		if skipHome && (pc.Kind == King || pc.Kind == Advisor || pc.Kind == Elephant) {
			continue
		}
		moves = moves[:0]
		genPieceMoves(b, Square(s), &moves)
		for _, m := range moves {
			if m.To == sq {
				return true
			}
		}
	}
	return false
}

// InCheck side 的王被将军；王不在盘上也算被将
func (b *Board) InCheck(side Side) bool {
	k := b.findKing(side)
	if k == NoSquare {
		return true
	}
	return b.Attacked(k, side.Opponent())
}

// KingsFacing 两王同列且中间无子；少一个王不算
func (b *Board) KingsFacing() bool {
	rk := b.findKing(Red)
	bk := b.findKing(Black)
	if rk == NoSquare || bk == NoSquare {
		return false
	}
	if rk.Col() != bk.Col() {
		return false
	}
	lo, hi := rk.Row(), bk.Row()
	if lo > hi {
		lo, hi = hi, lo
	}
	for r := lo + 1; r < hi; r++ {
		if !b.At(r, rk.Col()).IsEmpty() {
			return false
		}
	}
	return true
}

func (b *Board) IsCheckmate(side Side) bool {
	return b.InCheck(side) && len(b.SafeMoves(side)) == 0
}

type CheckStatus struct {
	InCheck   bool `json:"in_check"`
	Checkmate bool `json:"checkmate"`
	Stalemate bool `json:"stalemate"` // 无子可走但未被将军
}

func (b *Board) Status(side Side) CheckStatus {
	inCheck := b.InCheck(side)
	noMoves := len(b.SafeMoves(side)) == 0
	return CheckStatus{
		InCheck:   inCheck,
		Checkmate: inCheck && noMoves,
		Stalemate: !inCheck && noMoves,
	}
}
