package xiangqi

// moveRule 为单个兵种生成候选走法（只看几何与阻挡，不管送将）。
type moveRule func(b *Board, side Side, from int, moves *[]Move)

// 兵种 → 走法规则表
var moveRules = [PieceSoldier + 1]moveRule{
	PieceChariot:  genChariotMoves,
	PieceHorse:    genHorseMoves,
	PieceCannon:   genCannonMoves,
	PieceElephant: genElephantMoves,
	PieceAdvisor:  genAdvisorMoves,
	PieceGeneral:  genGeneralMoves,
	PieceSoldier:  genSoldierMoves,
}

// CandidateMoves 返回某兵种从 from 出发的全部候选走法，顺序确定。
// 纯函数：不读写任何共享状态。未知兵种或越界起点返回空。
func CandidateMoves(b *Board, side Side, pt PieceType, from int) []Move {
	if from < 0 || from >= NumSquares {
		return nil
	}
	if side != Red && side != Black {
		return nil
	}
	if pt <= PieceNone || pt > PieceSoldier {
		return nil
	}
	var moves []Move
	moveRules[pt](b, side, from, &moves)
	return moves
}

// 生成指定一方的伪合法走法（不考虑自己将帅被将军）
func (p *Position) GeneratePseudoMovesForSide(side Side) []Move {
	var moves []Move
	for sq := 0; sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		moveRules[pc.Type()](&p.Board, side, sq, &moves)
	}
	return moves
}

func (p *Position) GeneratePseudoMoves() []Move {
	return p.GeneratePseudoMovesForSide(p.SideToMove)
}

// ApplyMove 落子并返回新局面，原局面保持不变。
// 只做最基本的输入检查，合法性由 ValidateMove 负责。
func (p *Position) ApplyMove(m Move) (*Position, bool) {
	if m.From < 0 || m.From >= NumSquares || m.To < 0 || m.To >= NumSquares {
		return nil, false
	}
	pc := p.Board.Squares[m.From]
	if pc == 0 || pc.Side() != p.SideToMove {
		return nil, false
	}
	captured := p.Board.Squares[m.To]

	np := *p
	np.Board.Squares[m.To] = pc
	np.Board.Squares[m.From] = 0
	np.SideToMove = Opposite(p.SideToMove)

	// 增量 Zobrist：移除 from 的子、移除被吃子（若有）、加入 to 的子、切换走子方。
	h := p.Hash
	if h == 0 {
		h = p.CalculateHash()
	}
	h ^= pieceHashKey(pc, m.From)
	if captured != 0 {
		h ^= pieceHashKey(captured, m.To)
	}
	h ^= pieceHashKey(pc, m.To)
	h ^= zobristSide
	np.Hash = h

	return &np, true
}

// movePiece 就地挪子，返回被吃的子。只用于草稿局面，不维护 Hash 与走子方。
func (p *Position) movePiece(m Move) Piece {
	captured := p.Board.Squares[m.To]
	p.Board.Squares[m.To] = p.Board.Squares[m.From]
	p.Board.Squares[m.From] = 0
	return captured
}

// undoMovePiece 撤销 movePiece，逐位还原棋盘。
func (p *Position) undoMovePiece(m Move, captured Piece) {
	p.Board.Squares[m.From] = p.Board.Squares[m.To]
	p.Board.Squares[m.To] = captured
}
