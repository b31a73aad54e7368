package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/peterkuimelis/autochess/internal/game"
	"github.com/peterkuimelis/autochess/internal/log"
	autonet "github.com/peterkuimelis/autochess/internal/net"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "host":
		runHost(os.Args[2:])
	case "join":
		runJoin(os.Args[2:])
	case "sim":
		runSim(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  autochess host [--addr ADDR] [--size N] [--frontline N] [--setup NAME] [--seed N]")
	fmt.Println("  autochess join [--addr ADDR]")
	fmt.Println("  autochess sim  [--size N] [--setup NAME] [--seed N] [--turns N] [--rounds N] [--delay DUR]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  host    Start a game server; the first two clients play white and black")
	fmt.Println("  join    Connect to a game server")
	fmt.Println("  sim     Run a local simulation to completion, printing every event")
}

func runHost(args []string) {
	fs := flag.NewFlagSet("host", flag.ExitOnError)
	addr := fs.String("addr", ":9000", "address to listen on")
	cfg := configFlags(fs)
	fs.Parse(args)

	srv := &autonet.Server{
		Addr:   *addr,
		Config: *cfg,
	}
	if err := srv.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runJoin(args []string) {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	addr := fs.String("addr", "localhost:9000", "server address to connect to")
	fs.Parse(args)

	if err := autonet.Connect(context.Background(), *addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSim(args []string) {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	cfg := configFlags(fs)
	turns := fs.Int("turns", 100, "maximum turns to simulate")
	delay := fs.Duration("delay", 0, "pause between turns (e.g. 500ms)")
	setupFile := fs.String("setup-file", "", "YAML file with custom setups (overrides --setup)")
	fs.Parse(args)

	cfg.Logger = log.NewTextLogger(os.Stdout)
	if *setupFile != "" {
		// A custom setup needs an empty board first.
		cfg.Setup = game.SetupKings
	}

	g, err := game.NewGame(*cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *setupFile != "" {
		f, err := game.LoadSetupFile(*setupFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		name := cfgSetupName(fs, f)
		entry, ok := f.Find(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: setup %q not found in %s\n", name, *setupFile)
			os.Exit(1)
		}
		g.Board().Clear()
		if err := g.ApplyCustomSetup(entry); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	for i := 0; i < *turns && !g.Over(); i++ {
		if err := g.PlayTurn(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if *delay > 0 {
			time.Sleep(*delay)
		}
	}

	fmt.Println()
	fmt.Println(g.Board())
	if g.Over() {
		fmt.Println(g.Result())
	} else {
		fmt.Printf("No result after %d turns\n", *turns)
	}
}

// configFlags registers the shared game config flags on a flag set.
func configFlags(fs *flag.FlagSet) *game.Config {
	cfg := &game.Config{}
	fs.IntVar(&cfg.BoardSize, "size", 24, "board edge length (8-50)")
	fs.IntVar(&cfg.Frontline, "frontline", 2, "placement rows beyond a king (1-10)")
	fs.IntVar(&cfg.MoveRounds, "rounds", 1, "move rounds per turn (1-10)")
	fs.Float64Var(&cfg.PointsRate, "rate", 5, "points credited per turn")
	fs.Float64Var(&cfg.StartPoints, "points", 20, "starting points per side")
	fs.StringVar(&cfg.Setup, "setup", game.SetupKings, "starting setup: kings, traditional or medium")
	fs.Int64Var(&cfg.Seed, "seed", 0, "RNG seed (0 for time-based)")
	return cfg
}

// cfgSetupName picks the custom setup name: the --setup flag if the user set
// it explicitly, otherwise the first setup in the file.
func cfgSetupName(fs *flag.FlagSet, f *game.SetupFile) string {
	explicit := false
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "setup" {
			explicit = true
		}
	})
	if explicit {
		return fs.Lookup("setup").Value.String()
	}
	return f.Setups[0].Name
}
