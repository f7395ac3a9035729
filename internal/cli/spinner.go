package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Indusoptima/plotsync-sub001/pkg/observability"
)

// spinnerFrames is the braille animation cycle shared by all spinners.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner renders an animated progress line on stderr while a solve or
// validation runs. The message can be swapped mid-run, which the solve
// command uses to surface pipeline stages as they happen.
type Spinner struct {
	ctx      context.Context
	cancel   context.CancelFunc
	stopped  chan struct{}
	stopOnce sync.Once

	mu      sync.Mutex
	message string
	width   int
}

// newSpinner creates a spinner with the given initial message.
func newSpinner(message string) *Spinner {
	return newSpinnerWithContext(context.Background(), message)
}

// newSpinnerWithContext creates a spinner that stops when ctx is cancelled.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		ctx:     spinnerCtx,
		cancel:  cancel,
		stopped: make(chan struct{}),
		message: message,
	}
}

// Start begins the animation. It returns immediately; rendering happens on a
// background goroutine until Stop or context cancellation.
func (s *Spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-ticker.C:
				s.render(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// SetMessage replaces the progress message shown next to the animation.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Stop halts the animation and clears the line. Safe to call repeatedly.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		<-s.stopped
	})
	s.clearLine()
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner's context has been cancelled.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

func (s *Spinner) render(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := fmt.Sprintf("%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
	fmt.Fprintf(os.Stderr, "\r%s", line)
	if w := len(s.message) + 4; w > s.width {
		s.width = w
	}
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.width
	if n := len(s.message) + 4; w < n {
		w = n
	}
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", w))
}

// =============================================================================
// Pipeline Stage Progress
// =============================================================================

// solveProgress forwards pipeline stage events to a spinner so the solve
// command shows which stage is running instead of a static message.
type solveProgress struct {
	observability.NoopSolverHooks
	spinner *Spinner
}

func newSolveProgress(s *Spinner) *solveProgress {
	return &solveProgress{spinner: s}
}

func (p *solveProgress) OnSolveStart(_ context.Context, roomCount, iterations int) {
	p.spinner.SetMessage(fmt.Sprintf("Placing %d rooms (%d iterations)...", roomCount, iterations))
}

func (p *solveProgress) OnAnnealStart(_ context.Context, seed uint64, _ int) {
	p.spinner.SetMessage(fmt.Sprintf("Optimizing layout (seed %d)...", seed))
}

func (p *solveProgress) OnAnnealComplete(_ context.Context, _ float64, _ int, _ bool, _ time.Duration) {
	p.spinner.SetMessage("Synthesizing walls and openings...")
}
