package xiangqi

// Perft 统计从 p 出发 depth 步内的合法走法树叶子数，用于校验走法生成。
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, mv := range moves {
		np, ok := p.ApplyMove(mv)
		if !ok {
			continue
		}
		nodes += Perft(np, depth-1)
	}
	return nodes
}

// PerftDivide 返回每个根走法到 depth 的叶子数，排查走法生成分歧时用。
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, mv := range p.LegalMoves() {
		np, ok := p.ApplyMove(mv)
		if !ok {
			continue
		}
		result[mv] = Perft(np, depth-1)
	}
	return result
}
