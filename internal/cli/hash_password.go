package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/wayfarer/internal/auth"
	"github.com/mrlokans/wayfarer/internal/config"
)

// HashPasswordCommand prints a bcrypt hash, for provisioning accounts by hand.
type HashPasswordCommand struct {
	Password string
	Cost     int

	In  io.Reader
	Out io.Writer
}

func NewHashPasswordCommand(cfg *config.Config) *HashPasswordCommand {
	return &HashPasswordCommand{
		Cost: cfg.Auth.BcryptCost,
		In:   os.Stdin,
		Out:  os.Stdout,
	}
}

func (cmd *HashPasswordCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("hash-password", flag.ContinueOnError)

	fs.StringVar(&cmd.Password, "password", "", "Password to hash (read from stdin when omitted)")
	fs.IntVar(&cmd.Cost, "cost", cmd.Cost, "bcrypt cost factor")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s hash-password [-password <value>] [-cost <n>]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  echo 'wanderlust' | %s hash-password\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Cost < bcrypt.MinCost || cmd.Cost > bcrypt.MaxCost {
		return fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}

func (cmd *HashPasswordCommand) Run() error {
	password := cmd.Password
	if password == "" {
		line, err := bufio.NewReader(cmd.In).ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	hash, err := auth.HashPassword(password, cmd.Cost)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.Out, hash)
	return nil
}
