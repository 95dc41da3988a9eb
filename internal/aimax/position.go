package aimax

import (
	"errors"
	"fmt"
)

var ErrIllegalMove = errors.New("illegal move")

type Phase int8

const (
	PhaseIdle         Phase = iota
	PhaseContinuation       // 轀已走第一步，等同一枚子走第二步
)

func (ph Phase) String() string {
	if ph == PhaseContinuation {
		return "continuation"
	}
	return "idle"
}

// Position = 棋盘 + 轮到谁走 + 轀连走状态
type Position struct {
	Board      Board
	SideToMove Side
	Phase      Phase
	Pending    Square // 连走阶段轀所在格，其余时候为 NoSquare
	Hash       uint64
}

func NewInitialPosition() *Position {
	pos := &Position{
		Board:      NewInitialBoard(),
		SideToMove: Red, // 红先
		Pending:    NoSquare,
	}
	pos.Hash = pos.CalculateHash()
	return pos
}

// LegalMoves 连走阶段只能走轀的第二步，否则是安全走法
func (p *Position) LegalMoves() []Move {
	if p.Phase == PhaseContinuation {
		return p.Board.ContinuationMoves(p.Pending, p.SideToMove)
	}
	return p.Board.SafeMoves(p.SideToMove)
}

func (p *Position) Status() CheckStatus {
	st := p.Board.Status(p.SideToMove)
	if p.Phase == PhaseContinuation {
		// 连走中一定有第二步可走
		st.Checkmate, st.Stalemate = false, false
	}
	return st
}

// Winner 已分胜负时返回胜方；和棋或未结束返回 NoSide
func (p *Position) Winner() Side {
	if p.Status().Checkmate {
		return p.SideToMove.Opponent()
	}
	return NoSide
}

// Play 校验并执行一步，返回新局面；不合法时原局面不变
func (p *Position) Play(m Move) (*Position, error) {
	legal, ok := ContainsMove(p.LegalMoves(), m.From, m.To)
	if !ok {
		return nil, fmt.Errorf("%w: %d->%d", ErrIllegalMove, m.From, m.To)
	}
	return p.apply(legal), nil
}

func (p *Position) apply(m Move) *Position {
	side := p.SideToMove
	pc := p.Board.Squares[m.From]
	captured := p.Board.Squares[m.To]

	np := *p
	np.Board = p.Board.Apply(m)

	h := p.EnsureHash()
	h ^= pieceHashKey(pc, m.From)
	h ^= pieceHashKey(captured, m.To)
	h ^= pieceHashKey(np.Board.Squares[m.To], m.To)
	h ^= p.pendingKey()

	np.Phase = PhaseIdle
	np.Pending = NoSquare
	np.SideToMove = side.Opponent()

	if p.Phase == PhaseIdle && m.Continuation && !np.Board.IsCheckmate(side.Opponent()) {
		if len(np.Board.ContinuationMoves(m.To, side)) > 0 {
			np.Phase = PhaseContinuation
			np.Pending = m.To
			np.SideToMove = side
		}
	}

	if np.SideToMove != side {
		h ^= zobristSide
	}
	h ^= np.pendingKey()
	np.Hash = h
	return &np
}
