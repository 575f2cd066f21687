// Package pager finds and runs the user's pager.
package pager

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bash/md/internal/debuglog"
	"github.com/google/shlex"
)

// Kind is a pager family with known command line conventions.
type Kind uint8

const (
	KindOther Kind = iota
	KindLess
	KindMore
	KindMost
	KindBat
)

func (k Kind) String() string {
	switch k {
	case KindLess:
		return "less"
	case KindMore:
		return "more"
	case KindMost:
		return "most"
	case KindBat:
		return "bat"
	}
	return "other"
}

// kindOf classifies program by its file name without extension.
func kindOf(program string) Kind {
	base := filepath.Base(program)
	switch strings.TrimSuffix(base, filepath.Ext(base)) {
	case "less":
		return KindLess
	case "more":
		return KindMore
	case "most":
		return KindMost
	case "bat", "batcat":
		return KindBat
	}
	return KindOther
}

// LookupFunc reads an environment variable, reporting whether it is set.
type LookupFunc func(key string) (string, bool)

// Pager is a pager command. An empty Program disables paging.
type Pager struct {
	Program string
	Args    []string
	Kind    Kind
}

// FromEnv returns the pager named by MD_PAGER or PAGER, falling back to
// less. A variable that is set but empty disables paging.
func FromEnv(lookup LookupFunc) Pager {
	for _, name := range []string{"MD_PAGER", "PAGER"} {
		value, ok := lookup(name)
		if !ok {
			continue
		}
		words, err := shlex.Split(value)
		if err != nil {
			debuglog.Log("pager: ignoring %s=%q: %v", name, value, err)
			continue
		}
		if len(words) == 0 {
			return Pager{}
		}
		return Pager{Program: words[0], Args: words[1:], Kind: kindOf(words[0])}
	}
	return Less(lookup)
}

// Less returns the default pager. It quits when the output fits on one
// screen unless LESS is set, in which case the user's preferences apply.
func Less(lookup LookupFunc) Pager {
	p := Pager{Program: "less", Kind: KindLess}
	if _, ok := lookup("LESS"); !ok {
		p.Args = []string{"--quit-if-one-screen"}
	}
	return p
}

// Disabled reports whether p pages nothing.
func (p Pager) Disabled() bool {
	return p.Program == ""
}

// Hyperlinks reports whether the pager passes OSC 8 sequences through.
func (p Pager) Hyperlinks() bool {
	return p.Kind != KindMore && p.Kind != KindMost
}

// DecorationWidth estimates the columns taken by the pager's own
// decoration, such as bat's line numbers and grid.
func (p Pager) DecorationWidth() int {
	if p.Kind == KindBat {
		return 10
	}
	return 0
}

// Argv returns the arguments passed to the program for a document titled
// title.
func (p Pager) Argv(title string) []string {
	args := append([]string(nil), p.Args...)
	switch p.Kind {
	case KindLess:
		args = append(args, "--RAW-CONTROL-CHARS")
	case KindBat:
		args = append(args, "--language", "txt", "--file-name", title)
	}
	return args
}

// Process is a running pager. Writes go to its standard input.
type Process struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// Start runs the pager with stdout and stderr attached to the given writers.
// It returns a nil Process when paging is disabled or the program does not
// exist, so callers can fall back to writing directly.
func (p Pager) Start(title string, stdout, stderr io.Writer) (*Process, error) {
	if p.Disabled() {
		return nil, nil
	}
	cmd := exec.Command(p.Program, p.Argv(title)...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	// bat pages through less as well, so the prompt goes in the environment.
	less, _ := os.LookupEnv("LESS")
	cmd.Env = append(os.Environ(), "LESS="+LessEnv(less, title))
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("pager: %w", err)
	}
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			debuglog.Log("pager: %s not found, writing directly", p.Program)
			return nil, nil
		}
		return nil, fmt.Errorf("pager: start %s: %w", p.Program, err)
	}
	debuglog.Log("pager: started %s %v", p.Program, cmd.Args[1:])
	return &Process{cmd: cmd, stdin: stdin}, nil
}

func (p *Process) Write(b []byte) (int, error) {
	return p.stdin.Write(b)
}

// Close signals the end of input and waits for the pager to exit.
func (p *Process) Close() error {
	closeErr := p.stdin.Close()
	if err := p.cmd.Wait(); err != nil {
		return fmt.Errorf("pager: %w", err)
	}
	if closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
		return fmt.Errorf("pager: %w", closeErr)
	}
	return nil
}
