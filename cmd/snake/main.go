package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/snake/internal/app"
	"github.com/vinser/snake/internal/flags"
)

const logFile = "snake-debug.log"

func main() {
	os.Exit(run(os.Args[0], os.Args[1:]))
}

// run plays the game and returns the process exit code.
func run(name string, args []string) int {
	fl, err := flags.Parse(name, args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		// the flag set has already printed the error and usage
		return 2
	}

	closeLog, err := openLog(fl.Debug, logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	defer closeLog()

	p := tea.NewProgram(app.New(fl), tea.WithAltScreen())
	final, err := p.Run()
	if m, ok := final.(app.Model); ok {
		m.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// openLog sends the standard logger to path when debug is on and discards it otherwise.
// stdout belongs to the terminal UI either way.
func openLog(debug bool, path string) (func() error, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}
	f, err := tea.LogToFile(path, "snake")
	if err != nil {
		return nil, err
	}
	return f.Close, nil
}
