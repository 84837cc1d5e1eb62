package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/m-lima/connect4/internal/config"
	"github.com/m-lima/connect4/internal/game"
	"github.com/m-lima/connect4/internal/logger"
	"github.com/m-lima/connect4/internal/match"
	"github.com/m-lima/connect4/internal/render"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cli, err := config.ParseArgs(args, os.Stdout)
	switch {
	case errors.Is(err, config.ErrHelp):
		return 0
	case err != nil:
		fmt.Println(err)
		fmt.Println()
		config.Usage(os.Stdout)
		return 2
	}

	level := cli.LogLevel
	if cli.Verbose && level != "debug" {
		level = "info"
	}
	if err := logger.Init(os.Stderr, level); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx := context.Background()

	white := cli.White.Build(game.White, cli.Verbose)
	black := cli.Black.Build(game.Black, cli.Verbose)
	fmt.Printf("White: %s, Black: %s\n", white, black)

	canvas := render.NewCanvas(os.Stdin, os.Stdout)
	result, err := match.New(cli.Size, white, black, canvas, canvas).Run(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Println(result)
	return 0
}
