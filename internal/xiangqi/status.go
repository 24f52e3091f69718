package xiangqi

// Status 是一方走子前的局面分类。
type Status int8

const (
	StatusOngoing Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	}
	return "unknown"
}

// HasLegalMove 判断 side 方是否还有至少一步合法棋，找到第一步即返回。
func (p *Position) HasLegalMove(side Side) bool {
	scratch := *p
	var moves []Move
	for sq := 0; sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		moves = moves[:0]
		moveRules[pc.Type()](&p.Board, side, sq, &moves)
		for _, mv := range moves {
			captured := scratch.movePiece(mv)
			ok := !scratch.facingGenerals() && !scratch.IsInCheck(side)
			scratch.undoMovePiece(mv, captured)
			if ok {
				return true
			}
		}
	}
	return false
}

// IsCheckmate：被将军且无棋可走。
func (p *Position) IsCheckmate(side Side) bool {
	return p.IsInCheck(side) && !p.HasLegalMove(side)
}

// IsStalemate：未被将军但无棋可走（困毙）。
func (p *Position) IsStalemate(side Side) bool {
	return !p.IsInCheck(side) && !p.HasLegalMove(side)
}

// ClassifyStatus 对 side 方走子前的局面做终局分类。
func (p *Position) ClassifyStatus(side Side) Status {
	inCheck := p.IsInCheck(side)
	if !p.HasLegalMove(side) {
		if inCheck {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if inCheck {
		return StatusCheck
	}
	return StatusOngoing
}
