package main

import (
	"flag"
	"fmt"
	"log"

	"aimax/internal/aimax"
	"aimax/internal/engine"
)

func main() {
	fen := flag.String("fen", "", "position to inspect, empty = start position")
	depth := flag.Int("depth", 0, "search the position at this depth, 0 = no search")
	flag.Parse()

	pos := aimax.NewInitialPosition()
	if *fen != "" {
		var err error
		if pos, err = aimax.DecodePosition(*fen); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("FEN:", pos.Encode())
	fmt.Println(pos.Board.String())
	fmt.Println("Pseudo moves:", len(pos.Board.PseudoMoves(pos.SideToMove)))
	fmt.Println("Legal moves:", len(pos.LegalMoves()))
	st := pos.Status()
	fmt.Printf("Side: %s phase: %s check: %v mate: %v stalemate: %v\n",
		pos.SideToMove, pos.Phase, st.InCheck, st.Checkmate, st.Stalemate)

	if *depth <= 0 {
		return
	}
	e := engine.NewEngine(engine.SearchConfig{FixedDepth: *depth, Verbose: true})
	if pos.Phase == aimax.PhaseContinuation {
		m, ok := e.ChooseContinuation(&pos.Board, pos.Pending, pos.SideToMove)
		fmt.Printf("Continuation: %+v ok=%v\n", m, ok)
		return
	}
	res := e.Search(&pos.Board, pos.SideToMove, nil)
	fmt.Printf("Best: %+v score=%d depth=%d nodes=%d time=%v\n",
		res.BestMove, res.Score, res.Depth, res.Nodes, res.TimeUsed)
}
