package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Symbol is the mark a player places on the board.
type Symbol string

const (
	SymbolX Symbol = "X"
	SymbolO Symbol = "O"

	EmptyCell Symbol = ""
)

const BoardSize = 9

// WinCombos lists rows, then columns, then diagonals. CheckWinner relies on this order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid, indexed 0..8 row by row.
type Board struct {
	cells [BoardSize]Symbol
}

func NewBoard() *Board {
	return &Board{}
}

// SetCell - writes value into the cell, replacing whatever was there.
// Only X, O and EmptyCell are accepted.
func (that *Board) SetCell(index int, value Symbol) error {
	if !ValidIndex(index) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidIndex, index)
	}

	if !validSymbol(value) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidSymbol, value)
	}

	that.cells[index] = value

	return nil
}

func (that *Board) Cell(index int) (Symbol, error) {
	if !ValidIndex(index) {
		return EmptyCell, fmt.Errorf("%w: cell %d", apperror.ErrInvalidIndex, index)
	}

	return that.cells[index], nil
}

// Cells - returns a copy of the grid.
func (that *Board) Cells() [BoardSize]Symbol {
	return that.cells
}

// CheckWinner - returns the symbol of the first completed line.
func (that *Board) CheckWinner() (Symbol, bool) {
	for _, combo := range WinCombos {
		a, b, c := that.cells[combo[0]], that.cells[combo[1]], that.cells[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a, true
		}
	}

	return EmptyCell, false
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// CheckDraw - a full board with a winning line is a win, not a draw.
func (that *Board) CheckDraw() bool {
	if !that.IsFull() {
		return false
	}

	_, won := that.CheckWinner()

	return !won
}

func (that *Board) Reset() {
	that.cells = [BoardSize]Symbol{}
}

func ValidIndex(index int) bool {
	return index >= 0 && index < BoardSize
}

func validSymbol(mark Symbol) bool {
	return mark == EmptyCell || mark == SymbolX || mark == SymbolO
}
