package aimax

import (
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// 河界：红方 0..4，黑方 5..9
	RiverRow = 5
)

type Board struct {
	Squares [NumSquares]Piece
}

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func (b *Board) At(row, col int) Piece {
	return b.Squares[row*Cols+col]
}

func (b *Board) Set(sq Square, p Piece) {
	b.Squares[sq] = p
}

// InPalace 红方九宫：行 0-2，列 3-5；黑方九宫：行 7-9，列 3-5
func InPalace(sq Square, side Side) bool {
	if !sq.Valid() {
		return false
	}
	return inPalace(side, sq.Row(), sq.Col())
}

func inPalace(side Side, row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	switch side {
	case Red:
		return row >= 0 && row <= 2
	case Black:
		return row >= 7 && row <= 9
	}
	return false
}

// 是否已经过河（站在对方半场）
func crossedRiver(side Side, row int) bool {
	switch side {
	case Red:
		return row >= RiverRow
	case Black:
		return row < RiverRow
	}
	return false
}

// 兵的前进方向：红向下(+1)，黑向上(-1)
func forward(side Side) int {
	if side == Red {
		return +1
	}
	return -1
}

var letterToKind = map[rune]Kind{
	'k': King,
	'a': Advisor,
	'e': Elephant,
	'h': Horse,
	'r': Car,
	'c': Cannon,
	'p': Pawn,
	'u': UpgradedCannon,
	't': UpgradedCar,
	'm': HorseCar,
	'g': Chong,
	'q': Kui,
	'j': Jun,
	'w': Wen,
	's': Shi,
}

var kindToLetter = func() map[Kind]rune {
	out := make(map[Kind]rune, len(letterToKind))
	for r, k := range letterToKind {
		out[k] = r
	}
	return out
}()

func pieceToChar(p Piece) rune {
	if p.IsEmpty() {
		return '.'
	}
	ch, ok := kindToLetter[p.Kind]
	if !ok {
		return '.'
	}
	if p.Side == Red {
		return unicode.ToUpper(ch)
	}
	return ch
}

func charToPiece(ch rune) (Piece, bool) {
	k, ok := letterToKind[unicode.ToLower(ch)]
	if !ok {
		return Empty, false
	}
	side := Black
	if unicode.IsUpper(ch) {
		side = Red
	}
	return MakePiece(side, k), true
}

// 第一行是红方底线（第 0 行）
const initialBoardString = `RHEAKAEHR
.........
.C.....C.
P.P.P.P.P
.........
.........
p.p.p.p.p
.c.....c.
.........
rheakaehr`

func parseBoard(s string) Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("board string: need 10 rows")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("board string: need 9 columns")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			pc, ok := charToPiece(ch)
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			b.Squares[r*Cols+c] = pc
		}
	}
	return b
}

func NewInitialBoard() Board {
	return parseBoard(initialBoardString)
}

// String 输出 10 行字符盘面，第一行为第 0 行
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			sb.WriteRune(pieceToChar(b.At(r, c)))
		}
		if r < Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// PieceCount 分别统计红黑子数
func (b *Board) PieceCount() (red, black int) {
	for _, pc := range b.Squares {
		switch pc.Color() {
		case Red:
			red++
		case Black:
			black++
		}
	}
	return red, black
}

func (b *Board) findKing(side Side) Square {
	for sq, pc := range b.Squares {
		if pc.Kind == King && pc.Side == side {
			return Square(sq)
		}
	}
	return NoSquare
}

func (b *Board) hasShi(side Side) bool {
	for _, pc := range b.Squares {
		if pc.Kind == Shi && pc.Side == side {
			return true
		}
	}
	return false
}
