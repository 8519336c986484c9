package ladder

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/wordladder/dictionary"
)

// node is one arena entry: a discovered word, the index of the node it was
// reached from (-1 for the start) and its distance from the start.
type node struct {
	word   string
	parent int
	depth  int
}

// walker encapsulates mutable search state.
type walker struct {
	opts  Options
	ctx   context.Context
	log   zerolog.Logger
	start string
	end   string
	rem   *dictionary.Remaining
	nodes []node
	queue []int
	res   *Result
}

// Find searches dict for a shortest ladder from start to end.
//
// The returned Result is non-nil whenever options and dictionary are valid;
// on failure its Ladder is empty and err is an *Error of kind ErrInvalidInput,
// ErrNoLadder or ErrSearchAborted. Every word of a found ladder except start
// is a member of dict.
func Find(start, end string, dict *dictionary.Dictionary, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Prepare walker
	w := &walker{
		opts:  o,
		ctx:   o.Ctx,
		log:   o.Logger.With().Str("start", start).Str("end", end).Str("strategy", o.Strategy.Name()).Logger(),
		start: start,
		end:   end,
		res:   &Result{},
	}

	// Validate the word pair before looking at the dictionary
	switch {
	case start == "" || end == "":
		return w.res, w.fail(ErrInvalidInput, "Start and end words must be non-empty", nil)
	case start == end:
		return w.res, w.fail(ErrInvalidInput, "Start and end words are the same", nil)
	}
	if dict == nil {
		return nil, ErrNilDictionary
	}
	// every word after start is a member, so an unknown end is unreachable
	if !dict.Contains(end) {
		return w.res, w.fail(ErrNoLadder, "End word is not in the dictionary", nil)
	}

	// Consume start and seed the frontier with it (no parent)
	w.rem = dictionary.NewRemaining(dict)
	w.rem.Take(start)
	w.nodes = make([]node, 0, 64)
	w.queue = make([]int, 0, 64)
	w.enqueue(start, -1, 0)

	// Main loop
	return w.res, w.loop()
}

// FindLadder is Find without the counters. The ladder is empty on error.
func FindLadder(start, end string, dict *dictionary.Dictionary, opts ...Option) (Ladder, error) {
	res, err := Find(start, end, dict, opts...)
	if err != nil || res == nil {
		return nil, err
	}
	return res.Ladder, nil
}

// enqueue appends a node for word and puts it on the frontier.
func (w *walker) enqueue(word string, parent, depth int) {
	w.nodes = append(w.nodes, node{word: word, parent: parent, depth: depth})
	w.queue = append(w.queue, len(w.nodes)-1)
	w.opts.OnEnqueue(word, depth)
}

// loop expands the frontier until the end word appears, the frontier
// empties, or the search is aborted.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.ctx.Done():
			return w.fail(ErrSearchAborted, "Search cancelled", w.ctx.Err())
		default:
		}
		// expansion ceiling, 0 means unlimited
		if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
			return w.fail(ErrSearchAborted, fmt.Sprintf("Expansion limit %d reached", w.opts.MaxExpansions), nil)
		}

		// dequeue in FIFO order so depths never decrease
		idx := w.queue[0]
		w.queue = w.queue[1:]
		cur := w.nodes[idx]
		w.opts.OnDequeue(cur.word, cur.depth)
		w.res.Expanded++

		// the end word is accepted the moment it is generated
		if w.expand(idx, cur) {
			w.res.Ladder = w.path(len(w.nodes) - 1)
			w.log.Debug().
				Int("length", len(w.res.Ladder)).
				Int("expanded", w.res.Expanded).
				Int("discovered", w.res.Discovered).
				Msg("ladder found")
			return nil
		}
	}

	// frontier exhausted
	return w.fail(ErrNoLadder, "No word ladder found", nil)
}

// expand feeds every candidate of cur through the end check and the
// Remaining. It reports whether the end word was reached, in which case
// the last arena node is the end.
func (w *walker) expand(idx int, cur node) bool {
	found := false
	w.opts.Strategy.Candidates(cur.word, w.rem, func(cand string) bool {
		if cand == w.end {
			w.nodes = append(w.nodes, node{word: cand, parent: idx, depth: cur.depth + 1})
			found = true
			return false
		}
		// first time seen? later branches must not reuse it
		if !w.rem.Take(cand) {
			return true
		}
		w.res.Discovered++
		w.enqueue(cand, idx, cur.depth+1)
		return true
	})
	return found
}

// path walks parent links back from the node at idx and returns the
// ladder in start-to-end order.
func (w *walker) path(idx int) Ladder {
	l := make(Ladder, w.nodes[idx].depth+1)
	for i := idx; i >= 0; i = w.nodes[i].parent {
		l[w.nodes[i].depth] = w.nodes[i].word
	}
	return l
}

// fail builds the *Error for kind and reports it on the logger.
func (w *walker) fail(kind error, msg string, cause error) error {
	w.res.Ladder = nil
	w.log.Warn().
		Err(cause).
		Str("kind", kind.Error()).
		Int("expanded", w.res.Expanded).
		Msg(msg)
	return &Error{Kind: kind, Start: w.start, End: w.end, Msg: msg, Cause: cause}
}
