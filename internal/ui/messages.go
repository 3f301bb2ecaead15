package ui

import (
	"time"
)

// tickMsg is sent on a timer to expire notifications and animate the spinner
type tickMsg time.Time

// pagerMsg reports that an external pager has exited
type pagerMsg struct {
	what string
	err  error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
