package ladder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Sentinel errors for ladder searches.
var (
	// ErrInvalidInput is returned when start equals end or a word is empty.
	ErrInvalidInput = errors.New("ladder: invalid input")

	// ErrNoLadder is returned when the search space is exhausted.
	ErrNoLadder = errors.New("ladder: no word ladder found")

	// ErrSearchAborted is returned when the expansion ceiling is reached
	// or the context is done before the search finishes.
	ErrSearchAborted = errors.New("ladder: search aborted")

	// ErrNilDictionary is returned if a nil dictionary is passed.
	ErrNilDictionary = errors.New("ladder: dictionary is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")

	// ErrInvalidLadder is returned by Verify for a malformed ladder.
	ErrInvalidLadder = errors.New("ladder: invalid ladder")
)

// Error describes a failed search together with the words involved.
type Error struct {
	Kind  error // one of the sentinels above
	Start string
	End   string
	Msg   string
	Cause error // e.g. context.Canceled; may be nil
}

// Error renders "msg (start, end)", followed by the cause when present.
func (e *Error) Error() string {
	s := fmt.Sprintf("%s: %s (%s, %s)", e.Kind, e.Msg, e.Start, e.End)
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Ladder is an ordered chain of words, start first.
type Ladder []string

// String renders the ladder as "a -> b -> c".
func (l Ladder) String() string {
	if len(l) == 0 {
		return "No word ladder found."
	}
	return strings.Join(l, " -> ")
}

// Len returns the number of words in the ladder.
func (l Ladder) Len() int { return len(l) }

// Start returns the first word, or "" for an empty ladder.
func (l Ladder) Start() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// End returns the last word, or "" for an empty ladder.
func (l Ladder) End() string {
	if len(l) == 0 {
		return ""
	}
	return l[len(l)-1]
}

// Result holds a ladder and counters describing the search that produced it.
//   - Expanded:   frontier words dequeued and expanded.
//   - Discovered: words taken from the dictionary and enqueued.
type Result struct {
	Ladder     Ladder
	Expanded   int
	Discovered int
}

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Find.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Strategy produces the one-edit neighbours of a frontier word.
	Strategy Strategy

	// MaxExpansions, if > 0, aborts the search after that many expansions.
	MaxExpansions int

	// Logger receives diagnostics; zerolog.Nop() by default.
	Logger zerolog.Logger

	// OnEnqueue is called when a word joins the frontier.
	OnEnqueue func(word string, depth int)

	// OnDequeue is called right before a frontier word is expanded.
	OnDequeue func(word string, depth int)

	err error
}

// DefaultOptions returns background context, Synthesis over DefaultAlphabet,
// no expansion ceiling, a no-op logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Strategy:  Synthesis{},
		Logger:    zerolog.Nop(),
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the candidate strategy. A nil strategy is ignored.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != nil {
			o.Strategy = s
		}
	}
}

// WithMaxExpansions bounds the number of expansions.
//
//	n > 0: abort with ErrSearchAborted after n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
