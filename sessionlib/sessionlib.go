// Package sessionlib sequences generation requests for an interactive front end.
//
// A Session belongs to the UI goroutine. Submit starts a worker goroutine that
// never touches the session: it completes its Job exactly once, and the UI
// goroutine hands the Outcome back to Apply.
package sessionlib

import (
	"errors"
	"fmt"
	"strings"

	"goWordCloud/analysislib"
)

// State of a generation request
type State int

const (
	Idle State = iota
	Running
	Completed
	Failed
	NoWords
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	case NoWords:
		return "no words"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	// ErrEmptyText rejects a blank submission
	ErrEmptyText = errors.New("no text to analyze")
	// ErrBusy rejects a submission while another one runs
	ErrBusy = errors.New("a generation is already running")
	// ErrNotRunning rejects an outcome that no request is waiting for
	ErrNotRunning = errors.New("no generation is running")
)

// Generator is the work done off the UI goroutine
type Generator interface {
	Generate(text string, p analysislib.Params) (*analysislib.Result, error)
}

// Outcome is what a worker hands back
type Outcome struct {
	Result *analysislib.Result
	Err    error
}

// State maps the outcome to the terminal state it leads to
func (o Outcome) State() State {
	switch {
	case o.Err == nil && o.Result != nil:
		return Completed
	case errors.Is(o.Err, analysislib.ErrNoAnalyzableWords):
		return NoWords
	}
	return Failed
}

// Job is the single value hand-off between one worker and the UI goroutine
type Job struct {
	done chan Outcome
}

// Done delivers the outcome once
func (j *Job) Done() <-chan Outcome {
	return j.done
}

// Wait blocks until the outcome arrives
func (j *Job) Wait() Outcome {
	return <-j.done
}

// Session tracks the request in flight and the last completed result.
// It is not safe for concurrent use.
type Session struct {
	gen   Generator
	state State
	last  *analysislib.Result
}

// New returns an idle session
func New(gen Generator) *Session {
	return &Session{gen: gen, state: Idle}
}

// State is Running between Submit and Apply, Idle otherwise
func (s *Session) State() State {
	return s.state
}

// Last is the result of the most recent completed request, nil before any
func (s *Session) Last() *analysislib.Result {
	return s.last
}

// Submit starts a generation on its own goroutine
func (s *Session) Submit(text string, p analysislib.Params) (*Job, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if s.state == Running {
		return nil, ErrBusy
	}
	s.state = Running

	job := &Job{done: make(chan Outcome, 1)}
	go run(s.gen, text, p, job.done)

	return job, nil
}

func run(gen Generator, text string, p analysislib.Params, done chan<- Outcome) {
	var o Outcome
	defer func() {
		if r := recover(); r != nil {
			o = Outcome{Err: fmt.Errorf("%w: %v", analysislib.ErrRendering, r)}
		}
		done <- o
	}()
	o.Result, o.Err = gen.Generate(text, p)
}

// Apply consumes the outcome of the running request and returns the session to Idle.
// The returned state tells the caller which view to show.
func (s *Session) Apply(o Outcome) (State, error) {
	if s.state != Running {
		return s.state, ErrNotRunning
	}
	s.state = Idle

	st := o.State()
	if st == Completed {
		s.last = o.Result
	}

	return st, nil
}
