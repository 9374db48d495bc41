// Command life runs Conway's Game of Life and its rule variants, either in
// a window (built with the ebiten tag) or as a batch job.
//
//	life [flags]                               interactive
//	life [flags] --console <file> <n>          write n generations to <file>_out/
//	life [flags] --test <init> <expected> <n>  compare init after n generations
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"life-ca/internal/otel"
	"life-ca/pkg/game"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fs := newFlagSet(cfg)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	gcfg, err := cfg.gameConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := otel.Setup(ctx, "life")
	if err != nil {
		fmt.Fprintf(stderr, "Error: otel setup: %v\n", err)
		return 1
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			fmt.Fprintf(stderr, "otel shutdown: %v\n", err)
		}
	}()

	logger := log.New(stderr, "", log.LstdFlags)
	ctrl := game.New(gcfg, game.WithLogger(logger))

	switch {
	case cfg.Console:
		return runConsole(ctx, ctrl, fs.Args(), stdout, stderr)
	case cfg.Test:
		return runTest(ctx, ctrl, fs.Args(), stdout, stderr)
	}

	if cfg.Load != "" {
		if err := ctrl.Load(cfg.Load); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	} else {
		ctrl.Randomize(gcfg.Density)
	}
	if err := runInteractive(ctrl, cfg.appOptions()); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newFlagSet(cfg *config) *flag.FlagSet {
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	return fs
}

func runConsole(ctx context.Context, ctrl *game.Controller, args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "Usage: life --console <file> <generations>")
		return 1
	}
	n, err := parseGenerations(args[1])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	dir, err := ctrl.RunConsoleMode(ctx, args[0], n)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "wrote %d generations to %s\n", n+1, dir)
	return 0
}

func runTest(ctx context.Context, ctrl *game.Controller, args []string, stdout, stderr io.Writer) int {
	if len(args) != 3 {
		fmt.Fprintln(stderr, "Usage: life --test <init> <expected> <generations>")
		return 1
	}
	n, err := parseGenerations(args[2])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	match, err := ctrl.RunComparisonTest(ctx, args[0], args[1], n)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if !match {
		fmt.Fprintf(stdout, "FAIL: %s after %d generations differs from %s\n", args[0], n, args[1])
		return 1
	}
	fmt.Fprintf(stdout, "PASS: %s after %d generations matches %s\n", args[0], n, args[1])
	return 0
}

func parseGenerations(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid generation count %q", s)
	}
	return n, nil
}
