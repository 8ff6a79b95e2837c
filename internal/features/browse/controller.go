// Package browse owns the filter state behind an item list view: it
// debounces free-text search input, commits settled filter changes, and
// makes sure only the latest committed fetch can publish results.
package browse

import (
	"strings"
	"time"

	"github.com/xyz-asif/temuin/internal/features/items"
)

// State is the controller's position in its fetch lifecycle.
type State int

const (
	// StateIdle means no input is pending and nothing has been fetched yet.
	StateIdle State = iota
	// StateDebouncing means a search keystroke occurred and its quiet-period
	// timer is running.
	StateDebouncing
	// StateFetching means a committed filter's request is in flight.
	StateFetching
	// StateSettled means the last committed fetch resolved, in success or
	// error.
	StateSettled
)

// DefaultDebounce is the quiet period applied to search keystrokes.
const DefaultDebounce = 500 * time.Millisecond

// FetchRequest asks the driver to run one query. Gen identifies the
// committed filter-set; the eventual result must be handed back to Resolve
// with the same generation so superseded responses can be discarded.
type FetchRequest struct {
	Gen  uint64
	Spec items.FilterSpec
}

// DebounceTimer asks the driver to wait Delay and then call Elapsed with
// Seq. A newer keystroke makes older sequences stale.
type DebounceTimer struct {
	Seq   uint64
	Delay time.Duration
}

// Controller is a single-task state machine over the filter specification.
// It performs no I/O itself: state transitions return command values
// (FetchRequest, DebounceTimer) that the owning event loop executes. All
// methods must be called from that one task.
type Controller struct {
	spec    items.FilterSpec
	state   State
	gen     uint64
	seq     uint64
	pending string
	results *items.ResultSet
	err     error
	delay   time.Duration
	closed  bool
}

// NewController creates a controller starting from the given filter. A
// non-positive delay falls back to DefaultDebounce.
func NewController(initial items.FilterSpec, delay time.Duration) *Controller {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Controller{
		spec:  initial.Canonical(),
		state: StateIdle,
		delay: delay,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Spec returns the committed filter specification.
func (c *Controller) Spec() items.FilterSpec { return c.spec }

// Results returns the latest settled result set, if any.
func (c *Controller) Results() *items.ResultSet { return c.results }

// Err returns the latest settled error, if any.
func (c *Controller) Err() error { return c.err }

// Closed reports whether the controller has been torn down.
func (c *Controller) Closed() bool { return c.closed }

// Init commits the initial filter and returns its fetch.
func (c *Controller) Init() *FetchRequest {
	return c.commit(c.spec)
}

// SetKind switches the item stream and re-queries immediately.
func (c *Controller) SetKind(kind items.Kind) *FetchRequest {
	spec := c.spec
	spec.Kind = kind
	spec.Page = items.DefaultPage
	return c.commit(spec)
}

// SetStatus changes the status filter and re-queries immediately.
func (c *Controller) SetStatus(status items.Status) *FetchRequest {
	spec := c.spec
	spec.Status = status
	spec.Page = items.DefaultPage
	return c.commit(spec)
}

// SetSort changes the sort order and re-queries immediately.
func (c *Controller) SetSort(sort items.Sort) *FetchRequest {
	spec := c.spec
	spec.Sort = sort
	spec.Page = items.DefaultPage
	return c.commit(spec)
}

// SetPage moves to another page and re-queries immediately.
func (c *Controller) SetPage(page int) *FetchRequest {
	spec := c.spec
	spec.Page = page
	return c.commit(spec)
}

// Input records a search keystroke and (re)arms the debounce timer. The
// value is not committed until the quiet period passes.
func (c *Controller) Input(text string) *DebounceTimer {
	if c.closed {
		return nil
	}
	c.pending = text
	c.seq++
	c.state = StateDebouncing
	return &DebounceTimer{Seq: c.seq, Delay: c.delay}
}

// Elapsed fires when a debounce timer completes. Timers superseded by a
// newer keystroke, or arriving after teardown, are ignored.
func (c *Controller) Elapsed(seq uint64) *FetchRequest {
	if c.closed || c.state != StateDebouncing || seq != c.seq {
		return nil
	}
	spec := c.spec
	spec.Search = strings.TrimSpace(c.pending)
	spec.Page = items.DefaultPage
	return c.commit(spec)
}

// Resolve delivers a fetch outcome. Results for any generation other than
// the latest committed one are discarded: last-committed-wins, not
// last-resolved-wins. A failed fetch settles with the error but keeps the
// previously settled results, so the view can keep showing them alongside
// the failure. The return value reports whether the outcome was applied.
func (c *Controller) Resolve(gen uint64, rs *items.ResultSet, err error) bool {
	if c.closed || gen != c.gen {
		return false
	}
	if err != nil {
		c.err = err
	} else {
		c.results = rs
		c.err = nil
	}
	c.state = StateSettled
	return true
}

// Close tears the controller down. Pending timers and in-flight results are
// discarded from here on; a closed controller never mutates again.
func (c *Controller) Close() {
	c.closed = true
}

func (c *Controller) commit(spec items.FilterSpec) *FetchRequest {
	if c.closed {
		return nil
	}
	c.spec = spec.Canonical()
	c.pending = c.spec.Search
	c.gen++
	c.state = StateFetching
	return &FetchRequest{Gen: c.gen, Spec: c.spec}
}
