package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"

	"aimax/internal/aimax"
	"aimax/internal/server/game"
)

// TestCase 一个局面和它的全部合法着法，给前端做规则一致性对照
type TestCase struct {
	FEN        string         `json:"fen"`
	Phase      string         `json:"phase"`
	LegalMoves []game.MoveDTO `json:"legal_moves"`
	InCheck    bool           `json:"in_check"`
	Checkmate  bool           `json:"checkmate"`
}

func main() {
	out := flag.String("o", "test_data.json", "output file")
	numGames := flag.Int("games", 10, "random games to sample")
	maxPlies := flag.Int("maxplies", 300, "ply limit per game")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var cases []TestCase
	for g := 0; g < *numGames; g++ {
		pos := aimax.NewInitialPosition()
		for ply := 0; ply < *maxPlies; ply++ {
			legal := pos.LegalMoves()
			st := pos.Status()
			cases = append(cases, TestCase{
				FEN:        pos.Encode(),
				Phase:      pos.Phase.String(),
				LegalMoves: game.MovesToDTO(legal),
				InCheck:    st.InCheck,
				Checkmate:  st.Checkmate,
			})
			if len(legal) == 0 {
				break
			}
			next, err := pos.Play(legal[rng.Intn(len(legal))])
			if err != nil {
				log.Fatalf("game %d ply %d: %v", g, ply, err)
			}
			pos = next
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cases); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d positions to %s", len(cases), *out)
}
