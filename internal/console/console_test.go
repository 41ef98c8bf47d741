package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
)

func newTestConsole(out *bytes.Buffer, opts ...entity.GameOption) *Console {
	terminal := render.NewTerminal(out, termenv.WithProfile(termenv.Ascii))
	return New(out, terminal, "ann", "", opts...)
}

func TestConsole_Run(t *testing.T) {
	t.Run("Plays to a win", func(t *testing.T) {
		// Given: a console fed X@0, O@1, X@4, O@2, X@8
		var out bytes.Buffer
		console := newTestConsole(&out)

		// When: the input is consumed
		err := console.Run(strings.NewReader("0\n1\n4\n2\n8\n3\n"))

		// Then: the banner names X and the extra move is refused
		require.NoError(t, err)
		assert.Contains(t, out.String(), "ANN WINS")
		assert.Contains(t, out.String(), "game over, r to play again")
		assert.True(t, console.game.HasWinner())
	})

	t.Run("Reports bad input and keeps going", func(t *testing.T) {
		var out bytes.Buffer
		console := newTestConsole(&out)

		err := console.Run(strings.NewReader("nine\n9\n4\nq\n7\n"))

		require.NoError(t, err)
		assert.Contains(t, out.String(), help)
		assert.Contains(t, out.String(), "cell 9 is off the board")
		assert.Equal(t, entity.SymbolX, console.game.Cells()[4])
		assert.Equal(t, entity.EmptyCell, console.game.Cells()[7])
	})

	t.Run("Guarded console refuses taken cells", func(t *testing.T) {
		var out bytes.Buffer
		console := newTestConsole(&out, entity.WithOccupiedCellGuard())

		err := console.Run(strings.NewReader("4\n4\n"))

		require.NoError(t, err)
		assert.Contains(t, out.String(), "cell 4 is taken")
		assert.False(t, console.game.IsXTurn())
	})

	t.Run("Reset starts over", func(t *testing.T) {
		var out bytes.Buffer
		console := newTestConsole(&out)

		err := console.Run(strings.NewReader("0\n1\nr\n"))

		require.NoError(t, err)
		assert.Equal(t, [entity.BoardSize]entity.Symbol{}, console.game.Cells())
		assert.True(t, console.game.IsXTurn())
	})
}
