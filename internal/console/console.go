package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
)

const help = "enter a cell 0-8, r to reset, q to quit"

// Console plays one local game on a terminal.
type Console struct {
	session  *entity.Session
	game     *entity.Game
	terminal *render.Terminal
	out      io.Writer
}

func New(out io.Writer, terminal *render.Terminal, xName, oName string, opts ...entity.GameOption) *Console {
	game := entity.NewGame(opts...)

	return &Console{
		session:  entity.NewSession("console", xName, oName, opts...),
		game:     game,
		terminal: terminal,
		out:      out,
	}
}

// Run - reads commands line by line until q or end of input.
func (that *Console) Run(in io.Reader) error {
	if err := that.draw(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "q":
			return nil
		case "r":
			that.game.Reset()
		default:
			if err := that.play(line); err != nil {
				if _, err = fmt.Fprintln(that.out, err); err != nil {
					return fmt.Errorf("failed to write: %w", err)
				}
				continue
			}
		}

		if err := that.draw(); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func (that *Console) play(line string) error {
	cell, err := strconv.Atoi(line)
	if err != nil {
		return errors.New(help)
	}

	if that.game.IsOver() {
		return errors.New("game over, r to play again")
	}

	if err = that.game.TakeTurn(cell); err != nil {
		switch {
		case errors.Is(err, apperror.ErrInvalidIndex):
			return fmt.Errorf("cell %d is off the board; %s", cell, help)
		case errors.Is(err, apperror.ErrCellOccupied):
			return fmt.Errorf("cell %d is taken", cell)
		default:
			return err
		}
	}

	return nil
}

func (that *Console) draw() error {
	that.session.State = that.game.State()

	if err := that.terminal.Render(that.session); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	return nil
}
