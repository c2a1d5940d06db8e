package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-ai/internal/ai"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

const (
	sourceModel    = "model"
	sourceFallback = "fallback"
	sourceNone     = "none"
)

type MoveService interface {
	SelectMove(ctx context.Context, board entity.Board) int
}

type generator interface {
	Generate(ctx context.Context, prompt string, params ai.Params) (string, error)
}

type replyRepo interface {
	Get(ctx context.Context, model, prompt string) (string, error)
	Save(ctx context.Context, model, prompt, reply string) error
}

// MoveOptions - fixed per process, taken from the ai config section.
type MoveOptions struct {
	Model     string
	Mark      string
	MaxTokens int
}

type moveService struct {
	logger *slog.Logger

	generator generator
	replies   replyRepo
	opts      MoveOptions

	// pick returns a uniform int in [0, n)
	pick func(n int) int
}

func NewMoveService(logger *slog.Logger, generator generator, replies replyRepo, opts MoveOptions) MoveService {
	return &moveService{
		logger:    logger.With("component", "move"),
		generator: generator,
		replies:   replies,
		opts:      opts,
		pick:      rand.IntN,
	}
}

// SelectMove - asks the model for a move and falls back to a random empty cell
// whenever the reply is missing, unparsable or illegal. Returns entity.NoMove
// only for a full board.
func (that *moveService) SelectMove(ctx context.Context, board entity.Board) int {
	log := that.logger.With("method", "SelectMove")

	empty := board.EmptyCells()
	if len(empty) == 0 {
		log.Info("move selected", "move", entity.NoMove, "source", sourceNone)
		return entity.NoMove
	}

	reply, err := that.askModel(ctx, board)
	if err != nil {
		move := that.randomMove(empty)
		log.Warn("inference failed", "error", err)
		log.Info("move selected", "move", move, "source", sourceFallback)
		return move
	}

	log.Info("raw model reply", "reply", reply)

	move, err := tictactoe.ParseMove(reply)
	if err == nil {
		err = board.CheckMove(move)
	}

	if err != nil {
		move = that.randomMove(empty)
		log.Info("model move rejected", "error", err)
		log.Info("move selected", "move", move, "source", sourceFallback)
		return move
	}

	log.Info("move selected", "move", move, "source", sourceModel)

	return move
}

func (that *moveService) askModel(ctx context.Context, board entity.Board) (string, error) {
	log := that.logger.With("method", "askModel")

	prompt, err := tictactoe.BuildPrompt(board, that.opts.Mark)
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}

	reply, err := that.replies.Get(ctx, that.opts.Model, prompt)
	switch {
	case err == nil:
		log.Debug("reply served from cache")
		return reply, nil
	case !errors.Is(err, repository.ErrReplyNotFound):
		log.Warn("reply cache read failed", "error", err)
	}

	reply, err = that.generator.Generate(ctx, prompt, ai.Params{MaxTokens: that.opts.MaxTokens})
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	if err = that.replies.Save(ctx, that.opts.Model, prompt, reply); err != nil {
		log.Warn("reply cache write failed", "error", err)
	}

	return reply, nil
}

// randomMove - uniform choice among empty cells; empty must hold at least one cell.
func (that *moveService) randomMove(empty []int) int {
	return empty[that.pick(len(empty))]
}
