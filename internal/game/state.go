package game

import (
	"fmt"
	"sync"
	"time"

	"xiangqi/internal/xiangqi"
)

type step struct {
	pos  *xiangqi.Position
	move xiangqi.Move
}

// Game 持有一局棋的演进状态。并发访问须经方法进行。
type Game struct {
	mu sync.Mutex

	ID        string
	Pos       *xiangqi.Position
	Status    xiangqi.Status
	CreatedAt time.Time
	UpdatedAt time.Time

	rules   Rules
	history []step
}

// Play 以 side 的名义走一步。轮次不对、着法不合规则或对局已结束时报错。
func (g *Game) Play(side xiangqi.Side, mv xiangqi.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status == xiangqi.StatusCheckmate || g.Status == xiangqi.StatusStalemate {
		return ErrGameOver
	}
	if side != g.Pos.SideToMove {
		return ErrWrongTurn
	}
	v := g.Pos.ValidateMove(side, mv)
	if !v.Valid {
		return fmt.Errorf("%w: %s", ErrIllegalMove, v.Reason)
	}
	next, ok := g.Pos.ApplyMove(mv)
	if !ok {
		return ErrIllegalMove
	}
	g.history = append(g.history, step{pos: g.Pos, move: mv})
	g.Pos = next
	g.Status = next.ClassifyStatus(next.SideToMove)
	g.UpdatedAt = time.Now()
	return nil
}

// Undo 撤销最近一手并恢复当时的局面与状态。
func (g *Game) Undo() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.history) == 0 {
		return ErrNothingToUndo
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.Pos = last.pos
	g.Status = last.pos.ClassifyStatus(last.pos.SideToMove)
	g.UpdatedAt = time.Now()
	return nil
}

// Moves 返回从开局到当前已走的着法序列。
func (g *Game) Moves() []xiangqi.Move {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]xiangqi.Move, len(g.history))
	for i, s := range g.history {
		out[i] = s.move
	}
	return out
}

// Captures 按被吃顺序返回已被吃掉的子。
func (g *Game) Captures() []xiangqi.Piece {
	g.mu.Lock()
	defer g.mu.Unlock()

	var out []xiangqi.Piece
	for _, s := range g.history {
		if pc := s.pos.Board.Squares[s.move.To]; pc != 0 {
			out = append(out, pc)
		}
	}
	return out
}

// Outcome 由当前状态推导结局：绝杀判走子方负，困毙按规则配置。
func (g *Game) Outcome() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.Status {
	case xiangqi.StatusCheckmate:
		return winnerOutcome(xiangqi.Opposite(g.Pos.SideToMove))
	case xiangqi.StatusStalemate:
		if g.rules.Stalemate == StalemateDraw {
			return OutcomeDraw
		}
		return winnerOutcome(xiangqi.Opposite(g.Pos.SideToMove))
	default:
		return OutcomeOngoing
	}
}

func winnerOutcome(side xiangqi.Side) Outcome {
	if side == xiangqi.Red {
		return OutcomeRedWins
	}
	return OutcomeBlackWins
}
