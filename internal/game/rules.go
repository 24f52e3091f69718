package game

// StalemateRule 决定困毙（未被将军却无合法着法）一方的结局。
type StalemateRule int8

const (
	// StalemateLoss 按中国象棋规则：困毙方判负。
	StalemateLoss StalemateRule = iota
	// StalemateDraw 判和。
	StalemateDraw
)

type Rules struct {
	Stalemate StalemateRule
}

type Outcome int8

const (
	OutcomeOngoing Outcome = iota
	OutcomeRedWins
	OutcomeBlackWins
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRedWins:
		return "red wins"
	case OutcomeBlackWins:
		return "black wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "ongoing"
	}
}
