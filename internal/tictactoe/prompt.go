package tictactoe

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// EmptyPlaceholder - how a free cell is shown to the model.
const EmptyPlaceholder = "-"

//go:embed prompts/move.tmpl
var movePromptRaw string

var moveTemplate = template.Must(template.New("move").Parse(movePromptRaw))

type promptView struct {
	Mark     string
	Opponent string
	board    entity.Board
}

// Cells - all nine cells on one line, separated by spaces.
func (that promptView) Cells() string {
	out := make([]string, len(that.board))
	for i, cell := range that.board {
		out[i] = renderCell(cell)
	}
	return strings.Join(out, " ")
}

// Row - one grid row, e.g. "X | - | O".
func (that promptView) Row(n int) string {
	return fmt.Sprintf("%s | %s | %s",
		renderCell(that.board[n*3]),
		renderCell(that.board[n*3+1]),
		renderCell(that.board[n*3+2]),
	)
}

func renderCell(cell string) string {
	if cell == entity.EmptyCell {
		return EmptyPlaceholder
	}
	return cell
}

// BuildPrompt - renders board into the move-selection prompt for the player with mark.
func BuildPrompt(board entity.Board, mark string) (string, error) {
	var sb strings.Builder

	view := promptView{
		Mark:     mark,
		Opponent: entity.Opponent(mark),
		board:    board,
	}

	if err := moveTemplate.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("failed to render move prompt: %w", err)
	}

	return sb.String(), nil
}
