// Command plorth is the Plorth interpreter: it runs a script file, a -e
// one-liner, a program piped on standard input, or an interactive REPL.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/plorth/plorth"
)

const historyFile = ".plorth_history"

func main() {
	var evalStr string
	flag.StringVar(&evalStr, "e", "", "evaluate the given Plorth snippet and exit")
	flag.Parse()

	args := flag.Args()
	switch {
	case evalStr != "":
		os.Exit(runSource(evalStr, ""))
	case len(args) > 0:
		os.Exit(runFile(args[0]))
	case stdinIsTerminal():
		os.Exit(runREPL())
	default:
		src, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "plorth: %v\n", err)
			os.Exit(1)
		}
		os.Exit(runSource(string(src), ""))
	}
}

func runFile(path string) int {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plorth: %v\n", err)
		return 1
	}
	src, err := decodeSource(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plorth: %s: %v\n", path, err)
		return 1
	}
	return runSource(src, path)
}

// decodeSource transcodes script contents to UTF-8, honoring a UTF-8,
// UTF-16LE or UTF-16BE byte order mark when one is present.
func decodeSource(raw []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func runSource(source, filename string) int {
	ctx := plorth.NewRuntime().NewContext()
	ctx.SetFilename(filename)
	q := ctx.Compile(source, filename)
	if q == nil {
		fmt.Fprintln(os.Stderr, ctx.Error())
		return 1
	}
	if !q.Call(ctx) {
		fmt.Fprintln(os.Stderr, ctx.Error())
		return 1
	}
	return 0
}

func runREPL() int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := filepath.Join(os.TempDir(), historyFile)
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
	}
	if f, err := os.Open(histPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	ctx := plorth.NewRuntime().NewContext()
	for {
		input, err := line.Prompt(fmt.Sprintf("plorth:%d> ", ctx.Size()))
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			// io.EOF on Ctrl+D.
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		q := ctx.Compile(input, "<repl>")
		if q == nil {
			fmt.Fprintln(os.Stderr, ctx.Error())
			ctx.ClearError()
			continue
		}
		if !q.Call(ctx) {
			fmt.Fprintln(os.Stderr, ctx.Error())
			ctx.ClearError()
		}
	}
}
