package aimax

type genFunc func(b *Board, from Square, moves *[]Move)

var generators = [NumKinds]genFunc{
	King:     genKingMoves,
	Advisor:  genAdvisorMoves,
	Elephant: genElephantMoves,
	Horse:    genHorseMoves,
	Car:      genCarMoves,
	Cannon:   genCannonMoves,
	Pawn:     genPawnMoves,
	HorseCar: genHorseCarMoves,
	Chong:    genChongMoves,
	Kui:      genKuiMoves,
	Jun:      genJunMoves,
	Wen:      genWenMoves,
	Shi:      genShiMoves,
}

func genPieceMoves(b *Board, from Square, moves *[]Move) {
	k := b.Squares[from].Kind.Rule()
	if k <= KindNone || k >= NumKinds {
		return
	}
	if gen := generators[k]; gen != nil {
		gen(b, from, moves)
	}
}

// PseudoMoves 生成 side 的伪合法走法（不考虑自己王被将军）
func (b *Board) PseudoMoves(side Side) []Move {
	moves := make([]Move, 0, 64)
	for sq := 0; sq < NumSquares; sq++ {
		pc := b.Squares[sq]
		if pc.IsEmpty() || pc.Side != side {
			continue
		}
		genPieceMoves(b, Square(sq), &moves)
	}
	return moves
}

// Apply 返回走子后的新盘面；吃己方子时落点换成合成子
func (b Board) Apply(m Move) Board {
	if !m.From.Valid() || !m.To.Valid() {
		return b
	}
	pc := b.Squares[m.From]
	captured := b.Squares[m.To]
	if !captured.IsEmpty() && captured.Side == pc.Side {
		b.Squares[m.To] = Fuse(pc, captured)
	} else {
		b.Squares[m.To] = pc
	}
	b.Squares[m.From] = Empty
	return b
}

// SafeMoves 走完之后自己不被将军、两王不照面的走法
func (b *Board) SafeMoves(side Side) []Move {
	pseudo := b.PseudoMoves(side)
	out := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		next := b.Apply(m)
		if next.InCheck(side) || next.KingsFacing() {
			continue
		}
		out = append(out, m)
	}
	return out
}

// ContainsMove 按起止格查找，返回带标记的那一步
func ContainsMove(moves []Move, from, to Square) (Move, bool) {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return NoMove, false
}
