package aimax

var horizDirs = [2][2]int{{0, 1}, {0, -1}}

// 軳：只能横向的炮
func genKuiMoves(b *Board, from Square, moves *[]Move) {
	genScreenMoves(b, from, horizDirs[:], moves)
}

// 铳：炮架前走空格；隔一子可吃第二个子，隔两子可吃第三个子，之后停止
func genChongMoves(b *Board, from Square, moves *[]Move) {
	side := b.Squares[from].Side
	row, col := from.Row(), from.Col()
	for _, d := range orthDirs {
		jumps := 0
		for r, c := row+d[0], col+d[1]; onBoard(r, c); r, c = r+d[0], c+d[1] {
			to := Square(r*Cols + c)
			dst := b.Squares[to]
			if dst.IsEmpty() {
				if jumps == 0 {
					*moves = append(*moves, Move{From: from, To: to})
				}
				continue
			}
			if jumps == 0 {
				jumps = 1
				continue
			}
			if dst.Side != side {
				*moves = append(*moves, Move{From: from, To: to})
			}
			if jumps == 2 {
				break
			}
			jumps = 2
		}
	}
}
