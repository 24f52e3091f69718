package xiangqi

import "golang.org/x/exp/slices"

// Reason 标识一步棋被拒绝的原因。
type Reason int8

const (
	ReasonNone Reason = iota
	ReasonOutOfBoard
	ReasonNoPiece
	ReasonWrongSide
	ReasonOwnPieceCapture
	ReasonNotCandidate
	ReasonFacingGenerals
	ReasonSelfCheck
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "ok"
	case ReasonOutOfBoard:
		return "out of board"
	case ReasonNoPiece:
		return "no piece at origin"
	case ReasonWrongSide:
		return "piece belongs to opponent"
	case ReasonOwnPieceCapture:
		return "destination holds own piece"
	case ReasonNotCandidate:
		return "not a basic move for this piece"
	case ReasonFacingGenerals:
		return "generals would face each other"
	case ReasonSelfCheck:
		return "own general would be in check"
	}
	return "unknown"
}

// Verdict 是走法校验的结果。非法走法是常态，用值返回而不是 error。
type Verdict struct {
	Valid  bool
	Reason Reason
}

// ValidateMove 校验 side 方走 m 是否合法。轮到谁走由上层管理，
// 这里每次调用都显式传入走子方。原局面不会被修改。
//
// 校验顺序：越界 → 起点无子 → 不是己方子 → 终点是己方子 →
// 不在候选集合 → 在草稿局面上模拟后检查王对脸、送将。
func (p *Position) ValidateMove(side Side, m Move) Verdict {
	if m.From < 0 || m.From >= NumSquares || m.To < 0 || m.To >= NumSquares {
		return Verdict{Reason: ReasonOutOfBoard}
	}
	pc := p.Board.Squares[m.From]
	if pc == 0 {
		return Verdict{Reason: ReasonNoPiece}
	}
	if pc.Side() != side {
		return Verdict{Reason: ReasonWrongSide}
	}
	if dst := p.Board.Squares[m.To]; dst != 0 && dst.Side() == side {
		return Verdict{Reason: ReasonOwnPieceCapture}
	}

	var cand []Move
	moveRules[pc.Type()](&p.Board, side, m.From, &cand)
	if !slices.Contains(cand, m) {
		return Verdict{Reason: ReasonNotCandidate}
	}

	// 草稿局面上模拟，绝不动调用方的棋盘
	scratch := *p
	scratch.movePiece(m)
	if scratch.facingGenerals() {
		return Verdict{Reason: ReasonFacingGenerals}
	}
	if scratch.IsInCheck(side) {
		return Verdict{Reason: ReasonSelfCheck}
	}
	return Verdict{Valid: true}
}

// LegalMovesForSide 返回 side 方的全部合法走法。
func (p *Position) LegalMovesForSide(side Side) []Move {
	pseudo := p.GeneratePseudoMovesForSide(side)
	out := make([]Move, 0, len(pseudo))
	scratch := *p
	for _, mv := range pseudo {
		captured := scratch.movePiece(mv)
		ok := !scratch.facingGenerals() && !scratch.IsInCheck(side)
		scratch.undoMovePiece(mv, captured)
		if ok {
			out = append(out, mv)
		}
	}
	return out
}

// LegalMoves 返回轮走方的全部合法走法。
func (p *Position) LegalMoves() []Move {
	return p.LegalMovesForSide(p.SideToMove)
}

// LegalMovesFrom 返回 from 处棋子的全部合法走法，供界面层高亮可落点。
// from 越界或无子时返回空。
func (p *Position) LegalMovesFrom(from int) []Move {
	if from < 0 || from >= NumSquares {
		return nil
	}
	pc := p.Board.Squares[from]
	if pc == 0 {
		return nil
	}
	side := pc.Side()
	var pseudo []Move
	moveRules[pc.Type()](&p.Board, side, from, &pseudo)
	out := make([]Move, 0, len(pseudo))
	scratch := *p
	for _, mv := range pseudo {
		captured := scratch.movePiece(mv)
		ok := !scratch.facingGenerals() && !scratch.IsInCheck(side)
		scratch.undoMovePiece(mv, captured)
		if ok {
			out = append(out, mv)
		}
	}
	return out
}
