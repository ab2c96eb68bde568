// Command ked is a terminal text editor.
//
// Usage: ked [file]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ked-editor/ked/editor"
	"github.com/ked-editor/ked/term"
)

// diskStore performs the filesystem I/O the editor core delegates.
type diskStore struct{}

func (diskStore) Load(name string) ([]string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", name, editor.ErrEncoding)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.Split(text, "\n"), nil
}

func (diskStore) Save(name string, lines []string) (int, error) {
	data := []byte(strings.Join(lines, "\n") + "\n")
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return 0, err
	}
	return len(data), nil
}

func run() error {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	tabStop := flag.Int("tabstop", 8, "tab stop width in columns")
	flag.Parse()

	store := diskStore{}
	var filename string
	var lines []string
	if flag.NArg() > 0 {
		filename = flag.Arg(0)
		loaded, err := store.Load(filename)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// New file: start empty, create on save.
		case err != nil:
			return err
		default:
			lines = loaded
		}
	}

	fd := int(os.Stdin.Fd())
	raw, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer raw.Restore()

	ed := editor.New(editor.Config{
		Filename:  filename,
		Lines:     lines,
		TabStop:   *tabStop,
		Style:     editor.DefaultStyle(),
		Clipboard: editor.SystemClipboard{},
		Store:     store,
		Input:     os.Stdin,
		Output:    os.Stdout,
		Size:      func() (int, int) { return term.Size(fd) },
	})

	stop := term.NotifyResize(ed.NotifyResize)
	defer stop()

	if err := ed.Run(context.Background()); err != nil {
		// Restore the terminal before the error reaches the shell.
		raw.Restore()
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ked:", err)
		os.Exit(1)
	}
}
