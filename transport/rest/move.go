package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const maxBodyBytes = 1 << 20

type moveService interface {
	SelectMove(ctx context.Context, board entity.Board) int
}

type MoveHandler struct {
	logger *slog.Logger
	moves  moveService
}

func NewMoveHandler(logger *slog.Logger, moves moveService) *MoveHandler {
	return &MoveHandler{
		logger: logger.With("component", "rest"),
		moves:  moves,
	}
}

type moveRequest struct {
	Board []*string `json:"board"`
}

type moveResponse struct {
	Move int `json:"move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// AIMove - POST /ai-move. Validates the board before the model is ever asked.
func (that *MoveHandler) AIMove(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "AIMove")

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Info("invalid request body", "error", err)
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid board: request body must be JSON with a board array"})
		return
	}

	if req.Board == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid board: board is required"})
		return
	}

	board, err := entity.NewBoard(req.Board)
	if err != nil {
		log.Info("board rejected", "error", err)
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	move := that.moves.SelectMove(r.Context(), board)

	that.writeJSON(w, http.StatusOK, moveResponse{Move: move})
}

func (that *MoveHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
