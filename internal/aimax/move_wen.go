package aimax

const wenMaxSteps = 2

// 轀不能后退：红方不往行号减小方向走，黑方相反
func wenDirs(side Side) [3][2]int {
	if side == Red {
		return [3][2]int{{1, 0}, {0, 1}, {0, -1}}
	}
	return [3][2]int{{-1, 0}, {0, 1}, {0, -1}}
}

// 轀第一步：最多两格，遇子停；敌子可吃，己子能合成也可吃。走法带 Continuation 标记
func genWenMoves(b *Board, from Square, moves *[]Move) {
	pc := b.Squares[from]
	row, col := from.Row(), from.Col()
	for _, d := range wenDirs(pc.Side) {
		r, c := row+d[0], col+d[1]
		for steps := 0; steps < wenMaxSteps && onBoard(r, c); steps++ {
			to := Square(r*Cols + c)
			dst := b.Squares[to]
			if dst.IsEmpty() {
				*moves = append(*moves, Move{From: from, To: to, Continuation: true})
			} else {
				if dst.Side != pc.Side || canFuse(pc, dst) {
					*moves = append(*moves, Move{From: from, To: to, Continuation: true})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// ContinuationMoves 轀落地后必须走的第二步：同样方向、最多两格，只能吃敌子不合成，
// 只检查自己不被将军
func (b *Board) ContinuationMoves(from Square, side Side) []Move {
	if !from.Valid() {
		return nil
	}
	pc := b.Squares[from]
	if pc.Kind != Wen || pc.Side != side {
		return nil
	}
	var out []Move
	row, col := from.Row(), from.Col()
	for _, d := range wenDirs(side) {
		r, c := row+d[0], col+d[1]
		for steps := 0; steps < wenMaxSteps && onBoard(r, c); steps++ {
			to := Square(r*Cols + c)
			dst := b.Squares[to]
			if !dst.IsEmpty() {
				if dst.Side != side {
					out = append(out, Move{From: from, To: to})
				}
				break
			}
			out = append(out, Move{From: from, To: to})
			r += d[0]
			c += d[1]
		}
	}

	safe := out[:0]
	for _, m := range out {
		next := b.Apply(m)
		if !next.InCheck(side) {
			safe = append(safe, m)
		}
	}
	return safe
}
