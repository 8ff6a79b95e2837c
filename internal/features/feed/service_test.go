package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xyz-asif/temuin/internal/features/items"
)

func at(day int) time.Time {
	return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
}

func item(id string, day int) items.Item {
	return items.Item{ID: id, Title: "item " + id, CreatedAt: at(day)}
}

func TestMergeRanksNewestFirst(t *testing.T) {
	a := []items.Item{item("a1", 1), item("a2", 5)}
	b := []items.Item{item("b1", 3), item("b2", 9), item("b3", 2)}

	merged := Merge(a, b, 6)

	require.Len(t, merged, 5)
	for i := 1; i < len(merged); i++ {
		require.False(t, merged[i].CreatedAt.After(merged[i-1].CreatedAt),
			"merged feed must be ordered newest first")
	}
	require.Equal(t, "b2", merged[0].ID)
}

func TestMergeBreaksTiesByID(t *testing.T) {
	a := []items.Item{item("z", 4), item("b", 4)}
	b := []items.Item{item("m", 4)}

	merged := Merge(a, b, 6)

	require.Equal(t, []string{"b", "m", "z"}, []string{merged[0].ID, merged[1].ID, merged[2].ID})
}

func TestMergeTruncatesToCap(t *testing.T) {
	var a, b []items.Item
	for i := 1; i <= 5; i++ {
		a = append(a, item(fmt.Sprintf("a%d", i), i))
		b = append(b, item(fmt.Sprintf("b%d", i), i+10))
	}

	merged := Merge(a, b, 6)
	require.Len(t, merged, 6)

	merged = Merge(a, nil, 6)
	require.Len(t, merged, 5, "cap only truncates, it never pads")
}

func TestMergeIsCommutative(t *testing.T) {
	a := []items.Item{item("a1", 7), item("a2", 2), item("a3", 2)}
	b := []items.Item{item("b1", 7), item("b2", 4)}

	require.Empty(t, cmp.Diff(Merge(a, b, 6), Merge(b, a, 6)),
		"source order must not affect the final ranking")
}

func TestMergeIsPure(t *testing.T) {
	a := []items.Item{item("a2", 3), item("a1", 8)}
	b := []items.Item{item("b1", 5)}
	aBefore := append([]items.Item(nil), a...)
	bBefore := append([]items.Item(nil), b...)

	first := Merge(a, b, 6)
	second := Merge(a, b, 6)

	require.Empty(t, cmp.Diff(first, second), "identical inputs yield identical output")
	require.Empty(t, cmp.Diff(aBefore, a), "inputs are never mutated")
	require.Empty(t, cmp.Diff(bBefore, b), "inputs are never mutated")
}

// feedServer serves the lost and found streams, optionally failing either.
func feedServer(t *testing.T, failLost, failFound bool) *Service {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := r.URL.Query().Get("type")
		if (kind == "lost" && failLost) || (kind == "found" && failFound) {
			http.Error(w, fmt.Sprintf(`{"message":"%s stream down"}`, kind), http.StatusInternalServerError)
			return
		}
		switch kind {
		case "lost":
			io.WriteString(w, `[
				{"id":"l1","title":"Keys","type":"lost","status":"dicari","createdAt":"2024-01-03T00:00:00Z"},
				{"id":"l2","title":"Wallet","type":"lost","status":"dicari","createdAt":"2024-01-08T00:00:00Z"}
			]`)
		case "found":
			io.WriteString(w, `[
				{"id":"f1","title":"Umbrella","type":"found","status":"ditemukan","createdAt":"2024-01-05T00:00:00Z"}
			]`)
		default:
			io.WriteString(w, `[]`)
		}
	}))
	t.Cleanup(srv.Close)

	repo := items.NewRepository(srv.URL, srv.Client(), nil, zap.NewNop())
	return NewService(items.NewService(repo, zap.NewNop()), 6, zap.NewNop())
}

func TestRecentMergesBothStreams(t *testing.T) {
	svc := feedServer(t, false, false)

	f, err := svc.Recent(context.Background())
	require.NoError(t, err)
	require.False(t, f.Partial)
	require.Equal(t, []string{"l2", "f1", "l1"}, ids(f.Items))
}

func TestRecentToleratesOneFailedStream(t *testing.T) {
	svc := feedServer(t, true, false)

	f, err := svc.Recent(context.Background())
	require.NoError(t, err, "a single failed source must not abort the feed")
	require.True(t, f.Partial)
	require.Equal(t, []string{"f1"}, ids(f.Items))
}

func TestRecentFailsWhenBothStreamsFail(t *testing.T) {
	svc := feedServer(t, true, true)

	_, err := svc.Recent(context.Background())
	require.Error(t, err)
	require.True(t, items.IsFetch(err))
	require.Contains(t, err.Error(), "lost stream down")
	require.Contains(t, err.Error(), "found stream down", "both stream failures are reported")
}

func ids(list []items.Item) []string {
	out := make([]string, len(list))
	for i, it := range list {
		out[i] = it.ID
	}
	return out
}
