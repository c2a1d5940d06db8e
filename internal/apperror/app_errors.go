package apperror

import "errors"

var (
	ErrInvalidBoard   = errors.New("invalid board")
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrNoDigitInReply = errors.New("no move digit in reply")
)
