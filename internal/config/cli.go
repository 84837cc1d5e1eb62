// Package config reads the settings of the terminal game and of the server.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/m-lima/connect4/internal/bot"
	"github.com/m-lima/connect4/internal/game"
	"github.com/m-lima/connect4/internal/player"
	"github.com/m-lima/connect4/internal/validator"
)

const (
	DefaultSize  = 7
	DefaultLevel = 8
)

var (
	// ErrHelp is returned by ParseArgs when usage was requested.
	ErrHelp = flag.ErrHelp
	// ErrInvalidArgs is returned by ParseArgs for arguments it cannot interpret.
	ErrInvalidArgs = errors.New("invalid arguments")
)

// PlayerSpec describes a seat as given on the command line.
type PlayerSpec struct {
	Kind  player.Kind
	Level int `validate:"gte=0,lte=12"`
}

// Build creates the player holding token.
func (p PlayerSpec) Build(token game.Token, verbose bool) player.Player {
	if p.Kind == player.Human {
		return player.NewHuman()
	}
	return player.NewComputer(bot.New(token, p.Level, bot.WithVerbose(verbose)))
}

// CLI holds the terminal game settings.
type CLI struct {
	Size     int `validate:"gte=5,lte=16"`
	Verbose  bool
	LogLevel string `validate:"oneof=debug info warn error"`
	White    PlayerSpec
	Black    PlayerSpec
}

// ParseArgs reads the terminal game arguments (without the program name).
// Flags must precede the players. Usage is written to output when -h is given.
func ParseArgs(args []string, output io.Writer) (CLI, error) {
	cli := CLI{
		White: PlayerSpec{Kind: player.Computer, Level: DefaultLevel},
		Black: PlayerSpec{Kind: player.Human},
	}

	fs := flag.NewFlagSet("connect4", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.BoolVar(&cli.Verbose, "v", false, "If an AI is present, make it verbose")
	fs.IntVar(&cli.Size, "size", DefaultSize, "Board size")
	fs.StringVar(&cli.LogLevel, "log-level", "warn", "Log level")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			Usage(output)
			return CLI{}, ErrHelp
		}
		return CLI{}, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	players := fs.Args()
	if len(players) > 2 {
		return CLI{}, fmt.Errorf("%w: too many players", ErrInvalidArgs)
	}
	seats := []*PlayerSpec{&cli.White, &cli.Black}
	for i, arg := range players {
		spec, err := ParsePlayer(arg)
		if err != nil {
			return CLI{}, err
		}
		*seats[i] = spec
	}

	if err := validator.GetValidator().Struct(cli); err != nil {
		return CLI{}, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	return cli, nil
}

// ParsePlayer reads "h" as a human and "a[level]" as a computer.
func ParsePlayer(arg string) (PlayerSpec, error) {
	if arg == "h" {
		return PlayerSpec{Kind: player.Human}, nil
	}

	level, ok := strings.CutPrefix(arg, "a")
	if !ok {
		return PlayerSpec{}, fmt.Errorf("%w: unknown player %q", ErrInvalidArgs, arg)
	}
	if level == "" {
		return PlayerSpec{Kind: player.Computer, Level: DefaultLevel}, nil
	}

	n, err := strconv.ParseUint(level, 10, 8)
	if err != nil {
		return PlayerSpec{}, fmt.Errorf("%w: bad level %q", ErrInvalidArgs, level)
	}
	return PlayerSpec{Kind: player.Computer, Level: int(n)}, nil
}

// Usage prints the command line help.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: connect4 [-h] [-v] [-size N] [-log-level LEVEL] [PLAYER [PLAYER]]")
	fmt.Fprintln(w, "    PLAYER:")
	fmt.Fprintln(w, "        h              Human player")
	fmt.Fprintln(w, "        a[level]       AI player, where level=difficulty")
	fmt.Fprintln(w, "    -h                 Show this help message")
	fmt.Fprintln(w, "    -v                 If an AI is present, make it verbose")
	fmt.Fprintln(w, "    -size N            Board size, from 5 to 16 (default 7)")
	fmt.Fprintln(w, "    -log-level LEVEL   One of debug, info, warn, error (default warn)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, "    connect4           White: AI[level=8], Black: Human")
	fmt.Fprintln(w, "    connect4 a6 h      White: AI[level=6], Black: Human")
	fmt.Fprintln(w, "    connect4 h         White: Human, Black: Human")
	fmt.Fprintln(w, "    connect4 a a9      White: AI[level=8], Black: AI[level=9]")
}
