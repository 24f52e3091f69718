package main

import (
	"flag"
	"math/rand"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"

	"xiangqi/internal/game"
)

func main() {
	games := flag.Int("games", 10, "number of games to play")
	maxMoves := flag.Int("maxmoves", 200, "plies before a game is abandoned as unfinished")
	seed := flag.Int64("seed", 1, "random seed")
	stalemateDraw := flag.Bool("stalemate-draw", false, "score stalemate as a draw instead of a loss")
	verbose := flag.Bool("v", false, "log every move")
	flag.Parse()

	log.SetHandler(text.New(os.Stderr))

	rules := game.Rules{}
	if *stalemateDraw {
		rules.Stalemate = game.StalemateDraw
	}
	mgr := game.NewManager(rules)
	rng := rand.New(rand.NewSource(*seed))

	tally := make(map[game.Outcome]int)
	for i := 0; i < *games; i++ {
		g := mgr.NewGame()
		outcome := playout(g, rng, *maxMoves, *verbose)
		tally[outcome]++
		log.WithFields(log.Fields{
			"game":    i + 1,
			"plies":   len(g.Moves()),
			"outcome": outcome.String(),
		}).Info("finished")
	}

	for _, o := range []game.Outcome{game.OutcomeRedWins, game.OutcomeBlackWins, game.OutcomeDraw, game.OutcomeOngoing} {
		if n := tally[o]; n > 0 {
			log.Infof("%v: %d", o, n)
		}
	}
}

// playout 随机走子直到分出胜负或达到步数上限。
func playout(g *game.Game, rng *rand.Rand, maxMoves int, verbose bool) game.Outcome {
	for ply := 0; ply < maxMoves; ply++ {
		if out := g.Outcome(); out != game.OutcomeOngoing {
			return out
		}
		side := g.Pos.SideToMove
		moves := g.Pos.LegalMoves()
		mv := moves[rng.Intn(len(moves))]
		if err := g.Play(side, mv); err != nil {
			log.WithError(err).Fatal("apply move")
		}
		if verbose {
			log.Infof("ply %d: %v plays %v", ply+1, side, mv)
		}
	}
	return g.Outcome()
}
