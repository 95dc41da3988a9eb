package httpserver

import "aimax/internal/server/game"

// POST /api/games
type CreateGameRequest struct {
	Mode string `json:"mode"` // online / ai_vs_ai / player_vs_ai
}

// POST /api/games/{id}/moves
type MoveRequest struct {
	From game.Coord `json:"from"`
	To   game.Coord `json:"to"`
}

// AIInfo 引擎这一手的搜索信息
type AIInfo struct {
	Moves  []game.MoveDTO `json:"moves"`
	Score  int            `json:"score"`
	Depth  int            `json:"depth"`
	Nodes  int64          `json:"nodes"`
	TimeMs int64          `json:"time_ms"`
}

// GameResponse 所有对局接口都返回当前快照，引擎走过棋时带上 AI
type GameResponse struct {
	game.State
	AI *AIInfo `json:"ai,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func aiInfo(res game.AIResult) *AIInfo {
	return &AIInfo{
		Moves:  game.MovesToDTO(res.Moves),
		Score:  res.Search.Score,
		Depth:  res.Search.Depth,
		Nodes:  res.Search.Nodes,
		TimeMs: res.Search.TimeUsed.Milliseconds(),
	}
}
