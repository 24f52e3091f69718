package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"golang.org/x/sync/errgroup"

	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", "", "position to count from, defaults to the opening setup")
	depth := flag.Int("depth", 4, "depth in plies")
	divide := flag.Bool("divide", false, "print per-move subtotals")
	jobs := flag.Int("jobs", runtime.NumCPU(), "parallel workers across root moves")
	flag.Parse()

	log.SetHandler(text.New(os.Stderr))

	pos := xiangqi.NewInitialPosition()
	if *fen != "" {
		p, err := xiangqi.DecodePosition(*fen)
		if err != nil {
			log.WithError(err).Fatal("decode position")
		}
		pos = p
	}

	start := time.Now()
	total, byMove := parallelPerft(pos, *depth, *jobs)
	elapsed := time.Since(start)

	if *divide {
		moves := make([]xiangqi.Move, 0, len(byMove))
		for mv := range byMove {
			moves = append(moves, mv)
		}
		sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })
		for _, mv := range moves {
			fmt.Printf("%s: %d\n", mv, byMove[mv])
		}
	}

	var nps int64
	if secs := elapsed.Seconds(); secs > 0 {
		nps = int64(float64(total) / secs)
	}
	fmt.Printf("perft(%d) = %d in %v (%d nodes/s)\n", *depth, total, elapsed, nps)
}

// parallelPerft 在根节点按走法切分任务，子树内沿用单线程计数。
// ApplyMove 不改写原局面，多个 worker 共享同一个 pos 是安全的。
func parallelPerft(pos *xiangqi.Position, depth, jobs int) (uint64, map[xiangqi.Move]uint64) {
	if depth <= 0 {
		return 1, nil
	}
	moves := pos.LegalMoves()
	counts := make([]uint64, len(moves))

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, mv := range moves {
		g.Go(func() error {
			child, ok := pos.ApplyMove(mv)
			if !ok {
				return fmt.Errorf("apply %s", mv)
			}
			counts[i] = xiangqi.Perft(child, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("perft worker")
	}

	var total uint64
	byMove := make(map[xiangqi.Move]uint64, len(moves))
	for i, mv := range moves {
		total += counts[i]
		byMove[mv] = counts[i]
	}
	return total, byMove
}
