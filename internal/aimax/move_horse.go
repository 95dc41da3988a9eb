package aimax

// 日字马 8 个落点 + 对应马腿
var horseLegMoves = [8]struct {
	Dr, Dc int // 终点
	Br, Bc int // 马腿
}{
	{+2, +1, +1, 0},
	{+2, -1, +1, 0},
	{-2, +1, -1, 0},
	{-2, -1, -1, 0},
	{+1, +2, 0, +1},
	{+1, -2, 0, -1},
	{-1, +2, 0, +1},
	{-1, -2, 0, -1},
}

func genHorseMoves(b *Board, from Square, moves *[]Move) {
	row, col := from.Row(), from.Col()
	for _, m := range horseLegMoves {
		br, bc := row+m.Br, col+m.Bc
		if !onBoard(br, bc) || !b.At(br, bc).IsEmpty() {
			continue // 憋马腿
		}
		tryAdd(b, from, row+m.Dr, col+m.Dc, moves)
	}
}

// 骠：马 + 车
func genHorseCarMoves(b *Board, from Square, moves *[]Move) {
	genHorseMoves(b, from, moves)
	genCarMoves(b, from, moves)
}

// 骏：马 + 象，各自蹩腿，象步不过河
func genJunMoves(b *Board, from Square, moves *[]Move) {
	genHorseMoves(b, from, moves)
	genElephantMoves(b, from, moves)
}
