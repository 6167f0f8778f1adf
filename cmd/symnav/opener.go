package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pableur/symnav/navigate"
	"github.com/pableur/symnav/symbol"
)

// editorOpener opens a location in the configured editor, or prints the
// path:row:col target when no editor is set. Transient opens are always
// printed; spawning an editor for a preview would steal the terminal from
// the picker.
type editorOpener struct {
	command string
	out     io.Writer
}

func (o editorOpener) Open(loc symbol.Location, opts navigate.OpenOptions) error {
	if o.command == "" || opts.Transient {
		fmt.Fprintln(o.out, loc.Href())
		return nil
	}
	cmd := exec.Command(o.command, fmt.Sprintf("+%d", loc.Row), loc.Path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

type statusNotifier struct {
	out io.Writer
}

func (n statusNotifier) Status(msg string) {
	fmt.Fprintln(n.out, msg)
}
