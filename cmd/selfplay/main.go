package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"aimax/internal/aimax"
	"aimax/internal/engine"
)

func main() {
	totalGames := flag.Int("games", 4, "number of games to play")
	depthA := flag.Int("a-depth", 2, "fixed search depth of player A")
	depthB := flag.Int("b-depth", 3, "fixed search depth of player B")
	randomB := flag.Bool("b-random", false, "player B uses randomized piece values")
	seed := flag.Int64("seed", 1, "seed for randomized piece values")
	maxPlies := flag.Int("maxplies", 200, "ply limit per game, reaching it is a draw")
	parallel := flag.Int("parallel", 2, "games played at the same time")
	flag.Parse()

	playerA := PlayerConfig{
		Name: fmt.Sprintf("A: Alpha-Beta (Depth %d)", *depthA),
		Cfg:  engine.SearchConfig{FixedDepth: *depthA},
	}
	playerB := PlayerConfig{
		Name: fmt.Sprintf("B: Alpha-Beta (Depth %d)", *depthB),
		Cfg:  engine.SearchConfig{FixedDepth: *depthB},
	}
	if *randomB {
		playerB.Name += " random values"
	}

	results := make([]GameResult, *totalGames)
	var g errgroup.Group
	g.SetLimit(*parallel)
	for i := 0; i < *totalGames; i++ {
		i := i
		a, b := playerA, playerB
		if *randomB {
			// 每局一张独立的表
			b.Cfg.Values = engine.RandomizedValues(rand.New(rand.NewSource(*seed + int64(i))))
		}
		red, black := a, b
		if i%2 == 1 {
			red, black = b, a
		}
		g.Go(func() error {
			res, err := playGame(i, red, black, *maxPlies)
			if err != nil {
				return err
			}
			results[i] = res
			log.Printf("game %d: red [%s] vs black [%s] -> %s in %d plies",
				i+1, red.Name, black.Name, winnerName(res), res.Plies)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("selfplay: %v", err)
	}

	report(results, playerA.Name, playerB.Name)
}

func winnerName(r GameResult) string {
	switch r.Winner {
	case aimax.Red:
		return r.Red
	case aimax.Black:
		return r.Black
	}
	return "draw"
}

func report(results []GameResult, names ...string) {
	wins := make(map[string]int)
	var nodes, times, plies []float64
	for _, r := range results {
		wins[winnerName(r)]++
		nodes = append(nodes, r.Nodes...)
		times = append(times, r.Times...)
		plies = append(plies, float64(r.Plies))
	}

	fmt.Printf("\n=== Final Score ===\n")
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("%s: %d\n", n, wins[n])
	}
	fmt.Printf("Draws: %d\n", wins["draw"])

	if len(nodes) == 0 {
		return
	}
	nodeMean, nodeStd := stat.MeanStdDev(nodes, nil)
	timeMean, timeStd := stat.MeanStdDev(times, nil)
	fmt.Printf("searches: %d, nodes %.0f ± %.0f (max %.0f), time %.1fms ± %.1fms (total %.1fs)\n",
		len(nodes), nodeMean, nodeStd, floats.Max(nodes), timeMean, timeStd, floats.Sum(times)/1000)
	fmt.Printf("plies per game: %.1f\n", stat.Mean(plies, nil))
}
