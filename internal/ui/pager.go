package ui

import (
	"errors"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

var errNoProgram = errors.New("program not set")

// PagerOps shows long documents in the ov pager, handing it the terminal
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show pages content until the user quits ov
func (p *PagerOps) Show(content string) error {
	return p.run(strings.NewReader(content))
}

func (p *PagerOps) run(r io.Reader) error {
	if p.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
