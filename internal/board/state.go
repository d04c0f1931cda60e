package board

// State is the position of a board in the Empty -> InProgress -> Won | Drawn lifecycle.
type State string

const (
	StateEmpty      State = "empty"
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateDrawn      State = "drawn"
)

func (that *Board) State() State {
	switch {
	case that.Winner() != None:
		return StateWon
	case that.Draw():
		return StateDrawn
	case len(that.OpenSpots()) == that.size*that.size:
		return StateEmpty
	default:
		return StateInProgress
	}
}

// IsTerminal reports whether no further moves are expected from s.
func (that State) IsTerminal() bool {
	return that == StateWon || that == StateDrawn
}
