package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
)

func main() {
	xName := flag.String("x", "", "display name for X")
	oName := flag.String("o", "", "display name for O")
	guard := flag.Bool("guard", false, "reject moves onto occupied cells")
	flag.Parse()

	// stdout carries the board, so logs go to stderr
	logger := newLogger(os.Stderr)

	var opts []entity.GameOption
	if *guard {
		opts = append(opts, entity.WithOccupiedCellGuard())
	}

	game := console.New(os.Stdout, render.NewTerminal(os.Stdout), *xName, *oName, opts...)
	if err := game.Run(os.Stdin); err != nil {
		logger.Error("console failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
