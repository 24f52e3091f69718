package xiangqi

import (
	"reflect"
	"sort"
	"testing"
)

func put(b *Board, side Side, pt PieceType, row, col int) {
	b.Squares[indexOf(row, col)] = makePiece(side, pt)
}

func destinations(moves []Move) []int {
	out := make([]int, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To)
	}
	return out
}

func sortedSquares(sqs []int) []int {
	out := append([]int(nil), sqs...)
	sort.Ints(out)
	return out
}

func squares(coords ...[2]int) []int {
	out := make([]int, 0, len(coords))
	for _, rc := range coords {
		out = append(out, indexOf(rc[0], rc[1]))
	}
	return out
}

func TestChariotOpenBoardOrdered(t *testing.T) {
	var b Board
	put(&b, Red, PieceChariot, 5, 4)
	got := destinations(CandidateMoves(&b, Red, PieceChariot, indexOf(5, 4)))
	want := squares(
		[2]int{4, 4}, [2]int{3, 4}, [2]int{2, 4}, [2]int{1, 4}, [2]int{0, 4},
		[2]int{6, 4}, [2]int{7, 4}, [2]int{8, 4}, [2]int{9, 4},
		[2]int{5, 3}, [2]int{5, 2}, [2]int{5, 1}, [2]int{5, 0},
		[2]int{5, 5}, [2]int{5, 6}, [2]int{5, 7}, [2]int{5, 8},
	)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("chariot moves:\ngot  %v\nwant %v", got, want)
	}
}

func TestChariotBlockAndCapture(t *testing.T) {
	var b Board
	put(&b, Red, PieceChariot, 5, 4)
	put(&b, Red, PieceSoldier, 5, 6)   // 己方子：止步于前
	put(&b, Black, PieceSoldier, 2, 4) // 敌方子：可吃，随后止步

	got := sortedSquares(destinations(CandidateMoves(&b, Red, PieceChariot, indexOf(5, 4))))
	want := sortedSquares(squares(
		[2]int{4, 4}, [2]int{3, 4}, [2]int{2, 4},
		[2]int{6, 4}, [2]int{7, 4}, [2]int{8, 4}, [2]int{9, 4},
		[2]int{5, 3}, [2]int{5, 2}, [2]int{5, 1}, [2]int{5, 0},
		[2]int{5, 5},
	))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("chariot moves:\ngot  %v\nwant %v", got, want)
	}
}

func TestCannonMountAndCapture(t *testing.T) {
	var b Board
	put(&b, Red, PieceCannon, 5, 4)
	put(&b, Black, PieceSoldier, 3, 4) // 炮架
	put(&b, Black, PieceChariot, 1, 4) // 炮架后第一子，可吃
	put(&b, Red, PieceSoldier, 5, 6)   // 己方炮架
	put(&b, Black, PieceChariot, 5, 8) // 己方炮架后的敌子，同样可吃

	got := sortedSquares(destinations(CandidateMoves(&b, Red, PieceCannon, indexOf(5, 4))))
	want := sortedSquares(squares(
		[2]int{4, 4}, [2]int{1, 4},
		[2]int{6, 4}, [2]int{7, 4}, [2]int{8, 4}, [2]int{9, 4},
		[2]int{5, 3}, [2]int{5, 2}, [2]int{5, 1}, [2]int{5, 0},
		[2]int{5, 5}, [2]int{5, 8},
	))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("cannon moves:\ngot  %v\nwant %v", got, want)
	}

	for _, excluded := range squares([2]int{3, 4}, [2]int{2, 4}, [2]int{5, 6}, [2]int{5, 7}) {
		for _, to := range got {
			if to == excluded {
				t.Fatalf("cannon must not reach %v", excluded)
			}
		}
	}
}

func TestCannonNeedsMountToCapture(t *testing.T) {
	var b Board
	put(&b, Red, PieceCannon, 5, 4)
	put(&b, Black, PieceChariot, 3, 4) // 无炮架，不可直接吃
	put(&b, Red, PieceSoldier, 1, 4)   // 炮架后是己方子，不可吃

	got := sortedSquares(destinations(CandidateMoves(&b, Red, PieceCannon, indexOf(5, 4))))
	want := sortedSquares(squares(
		[2]int{4, 4},
		[2]int{6, 4}, [2]int{7, 4}, [2]int{8, 4}, [2]int{9, 4},
		[2]int{5, 3}, [2]int{5, 2}, [2]int{5, 1}, [2]int{5, 0},
		[2]int{5, 5}, [2]int{5, 6}, [2]int{5, 7}, [2]int{5, 8},
	))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("cannon moves:\ngot  %v\nwant %v", got, want)
	}
}

func TestHorseCenterOpenBoard(t *testing.T) {
	var b Board
	put(&b, Red, PieceHorse, 5, 4)
	got := destinations(CandidateMoves(&b, Red, PieceHorse, indexOf(5, 4)))
	want := squares(
		[2]int{3, 3}, [2]int{3, 5}, [2]int{4, 2}, [2]int{4, 6},
		[2]int{6, 2}, [2]int{6, 6}, [2]int{7, 3}, [2]int{7, 5},
	)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("horse moves:\ngot  %v\nwant %v", got, want)
	}
}

// 红马 (9,1)，红车 (8,1) 蹩腿：经过 (8,1) 的两个落点都要被剪掉。
func TestHorseLegBlocked(t *testing.T) {
	var b Board
	put(&b, Red, PieceHorse, 9, 1)
	put(&b, Red, PieceChariot, 8, 1)

	got := destinations(CandidateMoves(&b, Red, PieceHorse, indexOf(9, 1)))
	want := squares([2]int{8, 3})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("horse moves:\ngot  %v\nwant %v", got, want)
	}
}

// 红相 (9,2)，(8,1) 有任意一子塞象眼：落点 (7,0) 被排除。
func TestElephantEyeBlocked(t *testing.T) {
	var b Board
	put(&b, Red, PieceElephant, 9, 2)
	put(&b, Black, PieceSoldier, 8, 1)

	got := destinations(CandidateMoves(&b, Red, PieceElephant, indexOf(9, 2)))
	want := squares([2]int{7, 4})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("elephant moves:\ngot  %v\nwant %v", got, want)
	}
}

func TestElephantCannotCrossRiver(t *testing.T) {
	var b Board
	put(&b, Red, PieceElephant, 5, 2)
	got := sortedSquares(destinations(CandidateMoves(&b, Red, PieceElephant, indexOf(5, 2))))
	want := sortedSquares(squares([2]int{7, 0}, [2]int{7, 4}))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("red elephant moves:\ngot  %v\nwant %v", got, want)
	}

	var b2 Board
	put(&b2, Black, PieceElephant, 4, 6)
	got = sortedSquares(destinations(CandidateMoves(&b2, Black, PieceElephant, indexOf(4, 6))))
	want = sortedSquares(squares([2]int{2, 4}, [2]int{2, 8}))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("black elephant moves:\ngot  %v\nwant %v", got, want)
	}
}

func TestAdvisorConfinedToPalace(t *testing.T) {
	var b Board
	put(&b, Red, PieceAdvisor, 8, 4)
	got := destinations(CandidateMoves(&b, Red, PieceAdvisor, indexOf(8, 4)))
	want := squares([2]int{7, 3}, [2]int{7, 5}, [2]int{9, 3}, [2]int{9, 5})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("advisor moves:\ngot  %v\nwant %v", got, want)
	}

	var b2 Board
	put(&b2, Red, PieceAdvisor, 9, 3)
	got = destinations(CandidateMoves(&b2, Red, PieceAdvisor, indexOf(9, 3)))
	want = squares([2]int{8, 4})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("corner advisor moves:\ngot  %v\nwant %v", got, want)
	}
}

func TestGeneralConfinedToPalace(t *testing.T) {
	var b Board
	put(&b, Red, PieceGeneral, 8, 4)
	got := destinations(CandidateMoves(&b, Red, PieceGeneral, indexOf(8, 4)))
	want := squares([2]int{7, 4}, [2]int{9, 4}, [2]int{8, 3}, [2]int{8, 5})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("general moves:\ngot  %v\nwant %v", got, want)
	}

	var b2 Board
	put(&b2, Red, PieceGeneral, 9, 3)
	got = destinations(CandidateMoves(&b2, Red, PieceGeneral, indexOf(9, 3)))
	want = squares([2]int{8, 3}, [2]int{9, 4})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("corner general moves:\ngot  %v\nwant %v", got, want)
	}
}

// 同列无遮挡的敌方将帅要作为可达落点出现（飞将），有遮挡则不出现。
func TestGeneralFlyingCapture(t *testing.T) {
	var b Board
	put(&b, Red, PieceGeneral, 9, 4)
	put(&b, Black, PieceGeneral, 0, 4)

	redMoves := destinations(CandidateMoves(&b, Red, PieceGeneral, indexOf(9, 4)))
	if !containsSquare(redMoves, indexOf(0, 4)) {
		t.Fatalf("red general moves %v missing flying capture of (0,4)", redMoves)
	}
	blackMoves := destinations(CandidateMoves(&b, Black, PieceGeneral, indexOf(0, 4)))
	if !containsSquare(blackMoves, indexOf(9, 4)) {
		t.Fatalf("black general moves %v missing flying capture of (9,4)", blackMoves)
	}

	put(&b, Red, PieceSoldier, 5, 4) // 有遮挡后不再可达
	redMoves = destinations(CandidateMoves(&b, Red, PieceGeneral, indexOf(9, 4)))
	if containsSquare(redMoves, indexOf(0, 4)) {
		t.Fatalf("red general moves %v must not contain blocked flying capture", redMoves)
	}
	blackMoves = destinations(CandidateMoves(&b, Black, PieceGeneral, indexOf(0, 4)))
	if containsSquare(blackMoves, indexOf(9, 4)) {
		t.Fatalf("black general moves %v must not contain blocked flying capture", blackMoves)
	}
}

func containsSquare(sqs []int, sq int) bool {
	for _, s := range sqs {
		if s == sq {
			return true
		}
	}
	return false
}

func TestSoldierMoves(t *testing.T) {
	cases := []struct {
		name string
		side Side
		row  int
		col  int
		want []int
	}{
		{"red before river", Red, 6, 2, squares([2]int{5, 2})},
		{"red after river", Red, 4, 2, squares([2]int{3, 2}, [2]int{4, 1}, [2]int{4, 3})},
		{"red at last rank", Red, 0, 2, squares([2]int{0, 1}, [2]int{0, 3})},
		{"black before river", Black, 3, 2, squares([2]int{4, 2})},
		{"black after river", Black, 5, 2, squares([2]int{6, 2}, [2]int{5, 1}, [2]int{5, 3})},
		{"black at last rank", Black, 9, 6, squares([2]int{9, 5}, [2]int{9, 7})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b Board
			put(&b, tc.side, PieceSoldier, tc.row, tc.col)
			got := destinations(CandidateMoves(&b, tc.side, PieceSoldier, indexOf(tc.row, tc.col)))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("soldier moves:\ngot  %v\nwant %v", got, tc.want)
			}
		})
	}
}

func TestSoldierBlockedByOwnPiece(t *testing.T) {
	var b Board
	put(&b, Red, PieceSoldier, 4, 2)
	put(&b, Red, PieceHorse, 3, 2)
	got := destinations(CandidateMoves(&b, Red, PieceSoldier, indexOf(4, 2)))
	want := squares([2]int{4, 1}, [2]int{4, 3})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("soldier moves:\ngot  %v\nwant %v", got, want)
	}
}

func TestCandidateMovesDefensiveDefaults(t *testing.T) {
	b := parseInitialBoard()
	if got := CandidateMoves(&b, Red, PieceNone, indexOf(5, 4)); len(got) != 0 {
		t.Fatalf("PieceNone: got %v, want empty", got)
	}
	if got := CandidateMoves(&b, Red, PieceType(9), indexOf(5, 4)); len(got) != 0 {
		t.Fatalf("unknown kind: got %v, want empty", got)
	}
	if got := CandidateMoves(&b, Red, PieceChariot, -1); len(got) != 0 {
		t.Fatalf("negative origin: got %v, want empty", got)
	}
	if got := CandidateMoves(&b, Red, PieceChariot, NumSquares); len(got) != 0 {
		t.Fatalf("origin past edge: got %v, want empty", got)
	}
	if got := CandidateMoves(&b, NoSide, PieceChariot, indexOf(5, 4)); len(got) != 0 {
		t.Fatalf("NoSide: got %v, want empty", got)
	}
}

func TestCandidateMovesIdempotent(t *testing.T) {
	b := parseInitialBoard()
	probes := []struct {
		side Side
		pt   PieceType
		from int
	}{
		{Red, PieceChariot, indexOf(9, 0)},
		{Red, PieceCannon, indexOf(7, 1)},
		{Red, PieceHorse, indexOf(9, 1)},
		{Black, PieceCannon, indexOf(2, 7)},
		{Black, PieceSoldier, indexOf(3, 4)},
	}
	for _, pr := range probes {
		first := CandidateMoves(&b, pr.side, pr.pt, pr.from)
		second := CandidateMoves(&b, pr.side, pr.pt, pr.from)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("candidate moves not stable for %+v:\nfirst  %v\nsecond %v", pr, first, second)
		}
	}
}

// 任何候选走法都不会落在己方子上，也不会越界。
func TestCandidatesNeverLandOnOwnPieceOrOffBoard(t *testing.T) {
	pos := NewInitialPosition()
	for _, side := range []Side{Red, Black} {
		for _, mv := range pos.GeneratePseudoMovesForSide(side) {
			if mv.To < 0 || mv.To >= NumSquares {
				t.Fatalf("move %v leaves the board", mv)
			}
			if dst := pos.Board.Squares[mv.To]; dst != 0 && dst.Side() == side {
				t.Fatalf("move %v lands on own piece", mv)
			}
			src := pos.Board.Squares[mv.From]
			if src == 0 || src.Side() != side {
				t.Fatalf("move %v does not start from a %v piece", mv, side)
			}
		}
	}
}
