package xiangqi

// 兵：未过河只能前进一格；过河后可前进或横走一格；永不后退。
func genSoldierMoves(b *Board, side Side, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)

	step := func(r, c int) {
		if !onBoard(r, c) {
			return
		}
		to := indexOf(r, c)
		dst := b.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}

	step(row+forwardDir(side), col)
	if crossedRiver(side, row) {
		step(row, col-1)
		step(row, col+1)
	}
}
