package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

// Game holds the turn and result state of a single board.
// It is not safe for concurrent use.
type Game struct {
	board *Board

	xTurn  bool
	winner Symbol
	draw   bool

	guardOccupied bool
}

type GameOption func(*Game)

// WithOccupiedCellGuard - makes TakeTurn reject moves onto occupied cells
// with apperror.ErrCellOccupied instead of overwriting them.
func WithOccupiedCellGuard() GameOption {
	return func(game *Game) {
		game.guardOccupied = true
	}
}

func NewGame(opts ...GameOption) *Game {
	game := &Game{
		board: NewBoard(),
		xTurn: true,
	}

	for _, opt := range opts {
		opt(game)
	}

	return game
}

// TakeTurn - places the current symbol at index. Once the game is won or
// drawn it does nothing until Reset.
func (that *Game) TakeTurn(index int) error {
	if that.IsOver() {
		return nil
	}

	mark := that.CurrentSymbol()

	if that.guardOccupied {
		cell, err := that.board.Cell(index)
		if err != nil {
			return err
		}

		if cell != EmptyCell {
			return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
		}
	}

	if err := that.board.SetCell(index, mark); err != nil {
		return err
	}

	winner, won := that.board.CheckWinner()
	draw := !won && that.board.CheckDraw()

	that.winner = winner
	that.draw = draw
	that.xTurn = !that.xTurn

	return nil
}

// Reset - clears the board and returns the game to its initial state.
func (that *Game) Reset() {
	that.board.Reset()
	that.xTurn = true
	that.winner = EmptyCell
	that.draw = false
}

func (that *Game) CurrentSymbol() Symbol {
	if that.xTurn {
		return SymbolX
	}
	return SymbolO
}

func (that *Game) Cells() [BoardSize]Symbol {
	return that.board.Cells()
}

func (that *Game) IsXTurn() bool {
	return that.xTurn
}

func (that *Game) HasWinner() bool {
	return that.winner != EmptyCell
}

func (that *Game) Winner() (Symbol, bool) {
	return that.winner, that.HasWinner()
}

func (that *Game) IsDraw() bool {
	return that.draw
}

func (that *Game) IsOver() bool {
	return that.HasWinner() || that.draw
}

func (that *Game) GuardsOccupiedCells() bool {
	return that.guardOccupied
}

func (that *Game) Status() string {
	switch {
	case that.HasWinner():
		return StatusWon
	case that.draw:
		return StatusDraw
	default:
		return StatusOngoing
	}
}
