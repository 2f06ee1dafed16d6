package formatter

import (
	"fmt"
	"sync"
	"time"
)

const spinnerInterval = 80 * time.Millisecond

// Braille dot spinner frames.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a waiting indicator with a label on the current line.
// It is only suitable for interactive terminals.
type Spinner struct {
	mu    sync.Mutex
	label string
	stop  chan struct{}
	done  chan struct{}
}

// NewSpinner creates a spinner with the given label.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		label: label,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Start begins the animation. Call Stop to end it.
func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.stop:
				// Clear the spinner line.
				fmt.Print("\r\033[K")
				return
			case <-ticker.C:
				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Printf("\r  %s %s", StyleHeader.Render(frame), Dim(s.label))
			}
		}
	}()
}

// Stop ends the animation and clears the line. Safe to call twice.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.stop:
		return
	default:
		close(s.stop)
	}
	<-s.done
}

// StartSpinner creates and starts a spinner, returning its stop function.
func StartSpinner(label string) func() {
	s := NewSpinner(label)
	s.Start()
	return s.Stop
}
