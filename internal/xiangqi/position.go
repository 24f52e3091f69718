package xiangqi

// generalSquare 返回 side 方将帅所在格，不存在时返回 -1。
func (p *Position) generalSquare(side Side) int {
	for sq, pc := range p.Board.Squares {
		if pc != 0 && pc.Side() == side && pc.Type() == PieceGeneral {
			return sq
		}
	}
	return -1
}

func (p *Position) GeneralExists(side Side) bool {
	return p.generalSquare(side) != -1
}

// facingGenerals 判断双方将帅是否王对脸：同列且中间无任何子。
func (p *Position) facingGenerals() bool {
	redGeneral := p.generalSquare(Red)
	blackGeneral := p.generalSquare(Black)
	if redGeneral == -1 || blackGeneral == -1 {
		// 有一方将帅已经没了：对局终结，不存在对脸问题
		return false
	}

	rc, bc := colOf(redGeneral), colOf(blackGeneral)
	if rc != bc {
		return false
	}

	rr, br := rowOf(redGeneral), rowOf(blackGeneral)
	if rr > br {
		rr, br = br, rr
	}
	for r := rr + 1; r < br; r++ {
		if p.Board.Squares[indexOf(r, rc)] != 0 {
			return false // 中间有子，不算对脸
		}
	}
	return true
}
