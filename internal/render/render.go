package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	colorX = "#E5484D"
	colorO = "#3E63DD"
)

// Banner - the result line shown above the board: "<NAME> WINS", "DRAW" or
// nothing while the game is running.
func Banner(session *entity.Session) string {
	switch {
	case session.State.Winner != entity.EmptyCell:
		name := session.PlayerFor(session.State.Winner).DisplayName()
		return strings.ToUpper(name) + " WINS"
	case session.State.Draw:
		return "DRAW"
	default:
		return ""
	}
}

// CellText - empty cells render as a blank.
func CellText(mark entity.Symbol) string {
	if mark == entity.EmptyCell {
		return " "
	}
	return string(mark)
}

// Terminal draws sessions as a 3x3 grid. Colors follow the output profile,
// so an ASCII profile yields plain text.
type Terminal struct {
	out *termenv.Output
}

func NewTerminal(w io.Writer, opts ...termenv.OutputOption) *Terminal {
	return &Terminal{out: termenv.NewOutput(w, opts...)}
}

func (that *Terminal) Render(session *entity.Session) error {
	var b strings.Builder

	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			cells[col] = that.cell(session.State.Board[row*3+col])
		}

		b.WriteString(" " + strings.Join(cells, " | ") + "\n")
		if row < 2 {
			b.WriteString("---+---+---\n")
		}
	}

	if banner := Banner(session); banner != "" {
		b.WriteString(that.out.String(banner).Bold().String() + "\n")
	} else {
		next := session.PlayerFor(that.currentSymbol(session))
		b.WriteString(fmt.Sprintf("%s to move\n", next.DisplayName()))
	}

	if _, err := io.WriteString(that.out, b.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Terminal) cell(mark entity.Symbol) string {
	text := CellText(mark)

	switch mark {
	case entity.SymbolX:
		return that.out.String(text).Foreground(that.out.Color(colorX)).Bold().String()
	case entity.SymbolO:
		return that.out.String(text).Foreground(that.out.Color(colorO)).Bold().String()
	default:
		return text
	}
}

func (that *Terminal) currentSymbol(session *entity.Session) entity.Symbol {
	if session.State.XTurn {
		return entity.SymbolX
	}
	return entity.SymbolO
}
