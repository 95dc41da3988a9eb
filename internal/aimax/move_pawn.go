package aimax

// 兵：未过河只能前进一格；过河后可前进或左右一格，不能后退
func genPawnMoves(b *Board, from Square, moves *[]Move) {
	side := b.Squares[from].Side
	row, col := from.Row(), from.Col()
	dir := forward(side)

	tryAdd(b, from, row+dir, col, moves)
	if crossedRiver(side, row) {
		tryAdd(b, from, row, col+1, moves)
		tryAdd(b, from, row, col-1, moves)
	}
}

// 仕：全盘斜走一格，不受九宫限制
func genShiMoves(b *Board, from Square, moves *[]Move) {
	row, col := from.Row(), from.Col()
	for _, d := range diagDirs {
		tryAdd(b, from, row+d[0], col+d[1], moves)
	}
}
