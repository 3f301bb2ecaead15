package ui

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// resumeMsg carries a finished job's continuation back to Update
type resumeMsg struct {
	cont func()
}

// TeaLoop runs component work on goroutines and hands the continuations
// back to the Bubble Tea update loop. Wait must be kept pending, one
// command at a time, for continuations to be delivered.
type TeaLoop struct {
	ctx     context.Context
	resume  chan func()
	pending atomic.Int32
}

// NewTeaLoop creates a loop whose jobs stop when ctx is done
func NewTeaLoop(ctx context.Context) *TeaLoop {
	return &TeaLoop{
		ctx:    ctx,
		resume: make(chan func(), 64),
	}
}

// Go implements components.Loop
func (l *TeaLoop) Go(work func(ctx context.Context) func()) {
	l.pending.Add(1)
	go func() {
		cont := work(l.ctx)
		if cont == nil {
			cont = func() {}
		}
		select {
		case l.resume <- cont:
		case <-l.ctx.Done():
			l.pending.Add(-1)
		}
	}()
}

// Wait returns a command that blocks until the next continuation is ready
func (l *TeaLoop) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case cont := <-l.resume:
			return resumeMsg{cont: cont}
		case <-l.ctx.Done():
			return nil
		}
	}
}

// Pending is the number of jobs whose continuation has not run yet
func (l *TeaLoop) Pending() int {
	return int(l.pending.Load())
}

// run executes a delivered continuation on the update goroutine
func (l *TeaLoop) run(msg resumeMsg) {
	defer l.pending.Add(-1)
	msg.cont()
}
