package xiangqi

var (
	orthoDirs = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}
	diagDirs  = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}
)

// 车：横竖直走，遇子而止，敌子可吃
func genChariotMoves(b *Board, side Side, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	for _, d := range orthoDirs {
		r, c := row+d[0], col+d[1]
		for onBoard(r, c) {
			to := indexOf(r, c)
			pc := b.Squares[to]
			if pc == 0 {
				*moves = append(*moves, Move{From: from, To: to})
			} else {
				if pc.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 炮：车走法 + 隔一子（炮架）吃
func genCannonMoves(b *Board, side Side, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	for _, d := range orthoDirs {
		r, c := row+d[0], col+d[1]

		// 走子阶段：直到第一个棋子（炮架）
		for onBoard(r, c) {
			to := indexOf(r, c)
			if b.Squares[to] == 0 {
				*moves = append(*moves, Move{From: from, To: to})
				r += d[0]
				c += d[1]
				continue
			}
			r += d[0]
			c += d[1]
			break
		}

		// 吃子阶段：越过炮架后遇到的第一子，敌子可吃
		for onBoard(r, c) {
			to := indexOf(r, c)
			pc := b.Squares[to]
			if pc != 0 {
				if pc.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 相：田字，塞象眼，不过河
func genElephantMoves(b *Board, side Side, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	for _, d := range diagDirs {
		r := row + 2*d[0]
		c := col + 2*d[1]
		if !onBoard(r, c) {
			continue
		}
		if b.Squares[indexOf(row+d[0], col+d[1])] != 0 {
			continue // 塞象眼
		}
		if crossedRiver(side, r) {
			continue // 相不过河
		}
		dst := b.Squares[indexOf(r, c)]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: indexOf(r, c)})
		}
	}
}

// 仕：九宫内斜走一格
func genAdvisorMoves(b *Board, side Side, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	for _, d := range diagDirs {
		r := row + d[0]
		c := col + d[1]
		if !inPalace(side, r, c) {
			continue
		}
		dst := b.Squares[indexOf(r, c)]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: indexOf(r, c)})
		}
	}
}

// 帅：九宫内上下左右一格；同列无遮挡的对方将帅视为可吃（飞将）
func genGeneralMoves(b *Board, side Side, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	for _, d := range orthoDirs {
		r := row + d[0]
		c := col + d[1]
		if !inPalace(side, r, c) {
			continue
		}
		dst := b.Squares[indexOf(r, c)]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: indexOf(r, c)})
		}
	}

	// 飞将：沿本列朝对方方向找到的第一个子若是对方将帅，则该格可达
	dir := forwardDir(side)
	for r := row + dir; onBoard(r, col); r += dir {
		pc := b.Squares[indexOf(r, col)]
		if pc == 0 {
			continue
		}
		if pc.Side() != side && pc.Type() == PieceGeneral {
			*moves = append(*moves, Move{From: from, To: indexOf(r, col)})
		}
		break
	}
}
