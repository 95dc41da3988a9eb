package aimax

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidFEN = errors.New("invalid FEN")

// EncodeBoard 10 行用“/”隔开（第 0 行在前），空位用数字压缩
func EncodeBoard(b *Board) string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := b.At(r, c)
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

// Encode 盘面 + 空格 + w/b；连走阶段再加轀所在格号
func (p *Position) Encode() string {
	var sb strings.Builder
	sb.WriteString(EncodeBoard(&p.Board))
	sb.WriteByte(' ')
	if p.SideToMove == Red {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	if p.Phase == PhaseContinuation {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(int(p.Pending)))
	}
	return sb.String()
}

func DecodeBoard(s string) (Board, error) {
	var b Board
	rows := strings.Split(s, "/")
	if len(rows) != Rows {
		return b, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidFEN, Rows, len(rows))
	}
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Cols {
				return b, fmt.Errorf("%w: row %d too long", ErrInvalidFEN, r)
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			pc, ok := charToPiece(ch)
			if !ok {
				return b, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			b.Squares[r*Cols+c] = pc
			c++
		}
		if c != Cols {
			return b, fmt.Errorf("%w: row %d has %d columns", ErrInvalidFEN, r, c)
		}
	}
	return b, nil
}

func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 || len(parts) > 3 {
		return nil, ErrInvalidFEN
	}
	b, err := DecodeBoard(parts[0])
	if err != nil {
		return nil, err
	}
	pos := &Position{Board: b, Pending: NoSquare}
	switch parts[1] {
	case "w":
		pos.SideToMove = Red
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("%w: side %q", ErrInvalidFEN, parts[1])
	}
	if len(parts) == 3 {
		n, err := strconv.Atoi(parts[2])
		sq := Square(n)
		if err != nil || n < 0 || n >= NumSquares {
			return nil, fmt.Errorf("%w: pending square %q", ErrInvalidFEN, parts[2])
		}
		if pc := b.Squares[sq]; pc.Kind != Wen || pc.Side != pos.SideToMove {
			return nil, fmt.Errorf("%w: no wen on pending square %d", ErrInvalidFEN, n)
		}
		if len(b.ContinuationMoves(sq, pos.SideToMove)) == 0 {
			return nil, fmt.Errorf("%w: wen on %d has no second step", ErrInvalidFEN, n)
		}
		pos.Phase = PhaseContinuation
		pos.Pending = sq
	}
	pos.Hash = pos.CalculateHash()
	return pos, nil
}
