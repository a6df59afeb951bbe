package board

import "errors"

// Sentinel errors returned by this package. Wrap with fmt.Errorf and
// %w so callers can errors.Is against these.
var (
	ErrInvalidPuzzleString = errors.New("board: invalid puzzle string")
	ErrInvalidDigit        = errors.New("board: invalid digit")
	ErrBoardCollision      = errors.New("board: collision with an existing clue")
	ErrCellNotUnsolved     = errors.New("board: cell is not unsolved")
)
