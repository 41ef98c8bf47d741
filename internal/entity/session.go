package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// GameState is a serializable snapshot of a Game.
type GameState struct {
	Board  [BoardSize]Symbol `json:"board"`
	XTurn  bool              `json:"x_turn"`
	Winner Symbol            `json:"winner,omitempty"`
	Draw   bool              `json:"draw"`
	Status string            `json:"status"`
}

// Session is one live game between two named players.
type Session struct {
	ID      string    `json:"id"`
	PlayerX Player    `json:"player_x"`
	PlayerO Player    `json:"player_o"`
	Guarded bool      `json:"guarded,omitempty"`
	State   GameState `json:"state"`
}

func NewSession(id, xName, oName string, opts ...GameOption) *Session {
	game := NewGame(opts...)

	return &Session{
		ID:      id,
		PlayerX: NewPlayer(xName, true),
		PlayerO: NewPlayer(oName, false),
		Guarded: game.GuardsOccupiedCells(),
		State:   game.State(),
	}
}

// Game - rebuilds the engine from the stored snapshot.
func (that *Session) Game() (*Game, error) {
	var opts []GameOption
	if that.Guarded {
		opts = append(opts, WithOccupiedCellGuard())
	}

	game, err := RestoreGame(that.State, opts...)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", that.ID, err)
	}

	return game, nil
}

// PlayerFor - returns the player who owns the symbol.
func (that *Session) PlayerFor(mark Symbol) Player {
	if mark == SymbolO {
		return that.PlayerO
	}
	return that.PlayerX
}

func (that *Game) State() GameState {
	return GameState{
		Board:  that.board.Cells(),
		XTurn:  that.xTurn,
		Winner: that.winner,
		Draw:   that.draw,
		Status: that.Status(),
	}
}

// RestoreGame - rebuilds a Game from a snapshot. The stored status is
// ignored and derived again from the other fields.
func RestoreGame(state GameState, opts ...GameOption) (*Game, error) {
	for i, cell := range state.Board {
		if !validSymbol(cell) {
			return nil, fmt.Errorf("%w: cell %d holds %q", apperror.ErrCorruptState, i, cell)
		}
	}

	if !validSymbol(state.Winner) {
		return nil, fmt.Errorf("%w: winner %q", apperror.ErrCorruptState, state.Winner)
	}

	if state.Winner != EmptyCell && state.Draw {
		return nil, fmt.Errorf("%w: winner and draw both set", apperror.ErrCorruptState)
	}

	game := NewGame(opts...)
	game.board.cells = state.Board
	game.xTurn = state.XTurn
	game.winner = state.Winner
	game.draw = state.Draw

	return game, nil
}
