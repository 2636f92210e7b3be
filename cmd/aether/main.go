package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	aether "github.com/SpideyBash4116/Aether"
)

const (
	appName     = "aether"
	historyFile = ".aether_history"
	prompt      = "ae> "
)

var (
	errColor    = color.New(color.FgRed)
	resultColor = color.New(color.FgBlue)
)

func main() {
	if len(os.Args) < 2 {
		// No subcommand: interactive terminal gets the REPL, piped input is
		// evaluated line by line like a script.
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			os.Exit(cmdRepl())
		}
		os.Exit(runLines(os.Stdin, "<stdin>"))
	}

	switch cmd := os.Args[1]; cmd {
	case "repl":
		os.Exit(cmdRepl())
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "version":
		fmt.Printf("%s (built %s)\n", aether.Version, aether.BuildDate)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Aether %s

Usage:
  %s repl             Start the interactive prompt (default on a terminal).
  %s run <file.ae>    Evaluate a script one line at a time.
  %s version          Print the version.

An empty line or "exit" leaves the prompt.
`, aether.Version, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.ae>\n", appName)
		return 2
	}
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}
	defer f.Close()
	return runLines(f, args[0])
}

// runLines feeds each non-blank line of r through one persistent interpreter,
// printing every result. The first failure is rendered with its caret snippet
// and stops the run.
func runLines(r io.Reader, name string) int {
	ip := aether.New()
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := ip.EvalPersistentSource(line)
		if err != nil {
			errColor.Fprintf(os.Stderr, "Error: %s:%d: %s\n", name, lineno, aether.WrapErrorWithSource(err, line))
			return 1
		}
		fmt.Println(aether.FormatNumber(v))
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: reading %s: %v\n", appName, name, err)
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl() int {
	fmt.Printf("Aether v%s\n", aether.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	ip := aether.New()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		// Sentinel: an empty line or "exit" (any case) leaves the loop.
		// The pipeline itself never sees either.
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.EqualFold(trimmed, "exit") {
			return 0
		}

		v, err := ip.EvalPersistentSource(line)
		if err != nil {
			errColor.Fprintf(os.Stderr, "Error: %s\n", err)
			continue
		}
		resultColor.Println(aether.FormatNumber(v))
		ln.AppendHistory(line)
	}
}
