package main

import (
	"fmt"
	"time"

	"aimax/internal/aimax"
	"aimax/internal/engine"
)

type PlayerConfig struct {
	Name string
	Cfg  engine.SearchConfig
}

// GameResult 一局自对弈的结果，Winner 为 NoSide 表示和棋（步数到上限或困毙）
type GameResult struct {
	Index  int
	Red    string
	Black  string
	Winner aimax.Side
	Plies  int
	Nodes  []float64 // 每手搜索节点数
	Times  []float64 // 每手耗时（毫秒）
}

// playGame 双方各用自己的引擎；轀的第二步由走第一步的引擎决定
func playGame(idx int, red, black PlayerConfig, maxPlies int) (GameResult, error) {
	res := GameResult{Index: idx, Red: red.Name, Black: black.Name}
	engines := map[aimax.Side]*engine.Engine{
		aimax.Red:   engine.NewEngine(red.Cfg),
		aimax.Black: engine.NewEngine(black.Cfg),
	}

	pos := aimax.NewInitialPosition()
	var history []aimax.Move
	for res.Plies < maxPlies {
		side := pos.SideToMove
		e := engines[side]

		var m aimax.Move
		if pos.Phase == aimax.PhaseContinuation {
			cm, ok := e.ChooseContinuation(&pos.Board, pos.Pending, side)
			if !ok {
				return res, fmt.Errorf("game %d: no continuation at ply %d", idx, res.Plies)
			}
			m = cm
		} else {
			start := time.Now()
			sr := e.Search(&pos.Board, side, history)
			res.Nodes = append(res.Nodes, float64(sr.Nodes))
			res.Times = append(res.Times, float64(time.Since(start).Microseconds())/1000)
			if !sr.Found {
				if sr.Checkmated {
					res.Winner = side.Opponent()
				}
				return res, nil
			}
			m = sr.BestMove
		}

		next, err := pos.Play(m)
		if err != nil {
			return res, fmt.Errorf("game %d ply %d: %w", idx, res.Plies, err)
		}
		pos = next
		history = append(history, aimax.Move{From: m.From, To: m.To})
		res.Plies++
	}
	return res, nil
}
