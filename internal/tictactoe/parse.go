package tictactoe

import (
	"regexp"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

var moveDigit = regexp.MustCompile(`[0-8]`)

// ParseMove - first digit 0-8 anywhere in the reply, or entity.NoMove with
// apperror.ErrNoDigitInReply when there is none. The result is not checked
// against the board.
func ParseMove(reply string) (int, error) {
	match := moveDigit.FindString(reply)
	if match == "" {
		return entity.NoMove, apperror.ErrNoDigitInReply
	}

	move, err := strconv.Atoi(match)
	if err != nil {
		return entity.NoMove, err
	}

	return move, nil
}
