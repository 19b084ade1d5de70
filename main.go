package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mrlokans/wayfarer/internal/cli"
	"github.com/mrlokans/wayfarer/internal/config"
	"github.com/mrlokans/wayfarer/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "seed":
		cmd := cli.NewSeedCommand(config.NewConfig())
		if err := cmd.ParseFlags(args); err != nil {
			exitWithError(err)
		}
		if err := cmd.Run(context.Background()); err != nil {
			exitWithError(err)
		}

	case "hash-password":
		cmd := cli.NewHashPasswordCommand(config.NewConfig())
		if err := cmd.ParseFlags(args); err != nil {
			exitWithError(err)
		}
		if err := cmd.Run(); err != nil {
			exitWithError(err)
		}

	case "version":
		fmt.Printf("wayfarer %s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve           Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  seed            Insert destinations and the demo user into the database\n")
	fmt.Fprintf(os.Stderr, "  hash-password   Print a bcrypt hash of a password\n")
	fmt.Fprintf(os.Stderr, "  version         Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
