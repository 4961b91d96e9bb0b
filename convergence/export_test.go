package convergence

// Private helpers re-exported for white-box tests.
var (
	PickWinner = pickWinner
	TallyWins  = tallyWins
)
