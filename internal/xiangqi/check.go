package xiangqi

// IsAttacked 判断 sq 是否被 by 方攻击。
// 攻击的定义：对方任何一个子的候选走法里含有这个格子。
func (p *Position) IsAttacked(sq int, by Side) bool {
	if sq < 0 || sq >= NumSquares {
		return false
	}
	var moves []Move
	for s := 0; s < NumSquares; s++ {
		pc := p.Board.Squares[s]
		if pc == 0 || pc.Side() != by {
			continue
		}
		moves = moves[:0]
		moveRules[pc.Type()](&p.Board, by, s, &moves)
		for _, mv := range moves {
			if mv.To == sq {
				return true
			}
		}
	}
	return false
}

// IsInCheck 判断 side 方的将帅是否被将军。将帅不在盘上视为未被将军。
func (p *Position) IsInCheck(side Side) bool {
	general := p.generalSquare(side)
	if general == -1 {
		return false
	}
	return p.IsAttacked(general, Opposite(side))
}

// CheckStatus 描述一方的被将军状态，按需推导，不做缓存。
type CheckStatus struct {
	Side      Side
	InCheck   bool
	Attackers []int // 正在将军的子所在格
}

func (p *Position) CheckStatus(side Side) CheckStatus {
	st := CheckStatus{Side: side}
	general := p.generalSquare(side)
	if general == -1 {
		return st
	}
	by := Opposite(side)
	var moves []Move
	for s := 0; s < NumSquares; s++ {
		pc := p.Board.Squares[s]
		if pc == 0 || pc.Side() != by {
			continue
		}
		moves = moves[:0]
		moveRules[pc.Type()](&p.Board, by, s, &moves)
		for _, mv := range moves {
			if mv.To == general {
				st.Attackers = append(st.Attackers, s)
				break
			}
		}
	}
	st.InCheck = len(st.Attackers) > 0
	return st
}
