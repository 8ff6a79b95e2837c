package browse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/temuin/internal/features/items"
)

func newTestController() *Controller {
	return NewController(items.DefaultFilter(items.KindLost), 500*time.Millisecond)
}

func TestInitCommitsInitialFilter(t *testing.T) {
	ctl := newTestController()
	require.Equal(t, StateIdle, ctl.State())

	req := ctl.Init()
	require.NotNil(t, req)
	require.Equal(t, StateFetching, ctl.State())
	require.Equal(t, items.KindLost, req.Spec.Kind)
}

func TestFieldChangeFetchesImmediately(t *testing.T) {
	ctl := newTestController()
	first := ctl.Init()

	req := ctl.SetStatus(items.StatusClaimed)
	require.NotNil(t, req)
	require.Equal(t, StateFetching, ctl.State())
	require.Equal(t, items.StatusClaimed, req.Spec.Status)
	require.Greater(t, req.Gen, first.Gen, "every commit gets a fresh generation")
}

// Keystrokes at t=0, 100, 200 each restart the quiet period; only the timer
// armed by the final keystroke commits, producing exactly one fetch for the
// final value.
func TestDebounceCommitsOnlySettledValue(t *testing.T) {
	ctl := newTestController()
	ctl.Init()

	t0 := ctl.Input("w")
	t1 := ctl.Input("wa")
	t2 := ctl.Input("wallet")
	require.Equal(t, StateDebouncing, ctl.State())
	require.Equal(t, 500*time.Millisecond, t2.Delay)

	// The first two timers fire after being superseded: ignored.
	require.Nil(t, ctl.Elapsed(t0.Seq))
	require.Nil(t, ctl.Elapsed(t1.Seq))
	require.Equal(t, StateDebouncing, ctl.State())

	fetches := 0
	req := ctl.Elapsed(t2.Seq)
	if req != nil {
		fetches++
	}
	require.Equal(t, 1, fetches)
	require.Equal(t, "wallet", req.Spec.Search)
	require.Equal(t, StateFetching, ctl.State())

	// A duplicate firing of the committed timer is also ignored.
	require.Nil(t, ctl.Elapsed(t2.Seq))
}

func TestDebounceTrimsSearchBeforeCommit(t *testing.T) {
	ctl := newTestController()
	ctl.Init()

	timer := ctl.Input("  phone  ")
	req := ctl.Elapsed(timer.Seq)
	require.NotNil(t, req)
	require.Equal(t, "phone", req.Spec.Search)
}

// A slow response for an older filter-set must not overwrite the results of
// a newer one: last-committed-wins, not last-resolved-wins.
func TestStaleResultIsDiscarded(t *testing.T) {
	ctl := newTestController()
	f1 := ctl.Init()
	f2 := ctl.SetStatus(items.StatusFound)

	fresh := &items.ResultSet{Items: []items.Item{{ID: "fresh"}}}
	require.True(t, ctl.Resolve(f2.Gen, fresh, nil))
	require.Equal(t, StateSettled, ctl.State())

	stale := &items.ResultSet{Items: []items.Item{{ID: "stale"}}}
	require.False(t, ctl.Resolve(f1.Gen, stale, nil), "f1 resolved after f2 committed")
	require.Equal(t, "fresh", ctl.Results().Items[0].ID)
}

func TestResolveErrorReachesSettled(t *testing.T) {
	ctl := newTestController()
	req := ctl.Init()

	require.True(t, ctl.Resolve(req.Gen, nil, &items.FetchError{Message: "store down"}))
	require.Equal(t, StateSettled, ctl.State(), "errors settle the controller, never strand it fetching")
	require.Error(t, ctl.Err())
	require.Nil(t, ctl.Results())
}

// A transient failure must not blank the screen: the previously settled
// results stay available next to the error.
func TestFailedFetchRetainsPriorResults(t *testing.T) {
	ctl := newTestController()
	first := ctl.Init()
	require.True(t, ctl.Resolve(first.Gen, &items.ResultSet{Items: []items.Item{{ID: "prior"}}}, nil))

	second := ctl.SetStatus(items.StatusFound)
	require.True(t, ctl.Resolve(second.Gen, nil, &items.FetchError{Message: "store down"}))

	require.Equal(t, StateSettled, ctl.State())
	require.Error(t, ctl.Err())
	require.NotNil(t, ctl.Results(), "prior results must remain available after a failed fetch")
	require.Equal(t, "prior", ctl.Results().Items[0].ID)
}

func TestErrorClearedByNextSuccess(t *testing.T) {
	ctl := newTestController()
	req := ctl.Init()
	ctl.Resolve(req.Gen, nil, &items.FetchError{Message: "store down"})

	retry := ctl.SetPage(1)
	require.True(t, ctl.Resolve(retry.Gen, &items.ResultSet{}, nil))
	require.NoError(t, ctl.Err())
}

func TestCloseDiscardsPendingWork(t *testing.T) {
	ctl := newTestController()
	req := ctl.Init()
	timer := ctl.Input("wal")

	ctl.Close()

	require.Nil(t, ctl.Elapsed(timer.Seq), "timers firing after teardown are ignored")
	require.False(t, ctl.Resolve(req.Gen, &items.ResultSet{}, nil), "in-flight results never apply to a torn down controller")
	require.Nil(t, ctl.Results())
	require.Nil(t, ctl.Input("x"), "a closed controller accepts no new input")
	require.Nil(t, ctl.SetKind(items.KindFound))
}

func TestSearchCommitResetsPage(t *testing.T) {
	ctl := newTestController()
	ctl.Init()
	ctl.SetPage(4)

	timer := ctl.Input("keys")
	req := ctl.Elapsed(timer.Seq)
	require.NotNil(t, req)
	require.Equal(t, items.DefaultPage, req.Spec.Page, "a new search starts from the first page")
}

func TestFilterChangeDuringDebounceSupersedesTimer(t *testing.T) {
	ctl := newTestController()
	ctl.Init()

	timer := ctl.Input("wal")
	req := ctl.SetSort(items.SortOldest)
	require.NotNil(t, req)

	// The commit left Debouncing, so the orphaned timer must not fire a
	// second fetch with the uncommitted search text.
	require.Nil(t, ctl.Elapsed(timer.Seq))
}
