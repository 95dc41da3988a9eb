package game

import (
	"aimax/internal/aimax"
)

const (
	StatusOngoing   = "ongoing"
	StatusCheckmate = "checkmate"
	StatusStalemate = "stalemate"
)

// Coord 前端用的行列坐标
type Coord struct {
	R int `json:"r"`
	C int `json:"c"`
}

func (c Coord) Square() aimax.Square { return aimax.Sq(c.R, c.C) }

func CoordOf(sq aimax.Square) Coord { return Coord{R: sq.Row(), C: sq.Col()} }

type MoveDTO struct {
	From         Coord `json:"from"`
	To           Coord `json:"to"`
	Continuation bool  `json:"continuation,omitempty"`
}

func MoveToDTO(m aimax.Move) MoveDTO {
	return MoveDTO{From: CoordOf(m.From), To: CoordOf(m.To), Continuation: m.Continuation}
}

func MovesToDTO(ms []aimax.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = MoveToDTO(m)
	}
	return out
}

// State 某一时刻的对局快照，直接序列化给前端
type State struct {
	ID         string    `json:"id"`
	Mode       Mode      `json:"mode"`
	FEN        string    `json:"fen"`
	SideToMove string    `json:"side_to_move"`
	Phase      string    `json:"phase"`
	Pending    *Coord    `json:"pending,omitempty"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"`
	Winner     string    `json:"winner,omitempty"`
	InCheck    bool      `json:"in_check"`
	AITurn     bool      `json:"ai_turn"`
	History    []MoveDTO `json:"history"`
	Repetition int       `json:"repetition"`
}

func statusString(st aimax.CheckStatus) string {
	switch {
	case st.Checkmate:
		return StatusCheckmate
	case st.Stalemate:
		return StatusStalemate
	}
	return StatusOngoing
}
