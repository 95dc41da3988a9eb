package aimax

var (
	orthDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// tryAdd 目标格在盘内，且为空、敌子、或吃己方子能合成时加入
func tryAdd(b *Board, from Square, row, col int, moves *[]Move) {
	if !onBoard(row, col) {
		return
	}
	pc := b.Squares[from]
	to := Square(row*Cols + col)
	dst := b.Squares[to]
	if dst.IsEmpty() || dst.Side != pc.Side || canFuse(pc, dst) {
		*moves = append(*moves, Move{From: from, To: to})
	}
}

// 将：九宫内上下左右一格；己方有仕时不能动
func genKingMoves(b *Board, from Square, moves *[]Move) {
	side := b.Squares[from].Side
	if b.hasShi(side) {
		return
	}
	row, col := from.Row(), from.Col()
	for _, d := range orthDirs {
		r, c := row+d[0], col+d[1]
		if inPalace(side, r, c) {
			tryAdd(b, from, r, c, moves)
		}
	}
}

// 士：九宫内斜走一格
func genAdvisorMoves(b *Board, from Square, moves *[]Move) {
	side := b.Squares[from].Side
	row, col := from.Row(), from.Col()
	for _, d := range diagDirs {
		r, c := row+d[0], col+d[1]
		if inPalace(side, r, c) {
			tryAdd(b, from, r, c, moves)
		}
	}
}

// 相：田字，塞象眼，不过河
func genElephantMoves(b *Board, from Square, moves *[]Move) {
	side := b.Squares[from].Side
	row, col := from.Row(), from.Col()
	for _, d := range diagDirs {
		r, c := row+2*d[0], col+2*d[1]
		er, ec := row+d[0], col+d[1]
		if !onBoard(er, ec) || !b.At(er, ec).IsEmpty() {
			continue
		}
		if crossedRiver(side, r) {
			continue
		}
		tryAdd(b, from, r, c, moves)
	}
}

// 车：横竖滑行，遇子停；敌子可吃，己子能合成也可吃
func genCarMoves(b *Board, from Square, moves *[]Move) {
	pc := b.Squares[from]
	row, col := from.Row(), from.Col()
	for _, d := range orthDirs {
		r, c := row+d[0], col+d[1]
		for onBoard(r, c) {
			to := Square(r*Cols + c)
			dst := b.Squares[to]
			if dst.IsEmpty() {
				*moves = append(*moves, Move{From: from, To: to})
			} else {
				if dst.Side != pc.Side || canFuse(pc, dst) {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 炮：炮架之前可走空格，隔一子只能吃敌子
func genCannonMoves(b *Board, from Square, moves *[]Move) {
	genScreenMoves(b, from, orthDirs[:], moves)
}

func genScreenMoves(b *Board, from Square, dirs [][2]int, moves *[]Move) {
	side := b.Squares[from].Side
	row, col := from.Row(), from.Col()
	for _, d := range dirs {
		r, c := row+d[0], col+d[1]

		// 走子阶段：直到第一个棋子
		for onBoard(r, c) {
			to := Square(r*Cols + c)
			if !b.Squares[to].IsEmpty() {
				break
			}
			*moves = append(*moves, Move{From: from, To: to})
			r += d[0]
			c += d[1]
		}
		r += d[0]
		c += d[1]

		// 吃子阶段：越过炮架，遇到第一子可吃
		for onBoard(r, c) {
			to := Square(r*Cols + c)
			dst := b.Squares[to]
			if !dst.IsEmpty() {
				if dst.Side != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}
