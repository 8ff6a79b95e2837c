package feed

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xyz-asif/temuin/internal/features/items"
)

// Service builds the recent-activity feed by fetching the lost and found
// streams concurrently and merging them into one bounded, time-ordered list.
type Service struct {
	items *items.Service
	limit int
	log   *zap.Logger
}

// NewService creates a feed service. A non-positive limit falls back to
// DefaultLimit.
func NewService(itemSvc *items.Service, limit int, log *zap.Logger) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{items: itemSvc, limit: limit, log: log}
}

// Recent fetches both streams and merges them. If one source fails the feed
// is still built from the other and marked partial; only when both fail does
// the call error out.
func (s *Service) Recent(ctx context.Context) (*Feed, error) {
	var (
		lost, found       []items.Item
		lostErr, foundErr error
	)

	// Failures are captured, not returned, so one stream going down never
	// cancels the other.
	var g errgroup.Group
	g.Go(func() error {
		lost, lostErr = s.fetch(ctx, items.KindLost)
		return nil
	})
	g.Go(func() error {
		found, foundErr = s.fetch(ctx, items.KindFound)
		return nil
	})
	_ = g.Wait()

	if lostErr != nil && foundErr != nil {
		return nil, errors.Join(lostErr, foundErr)
	}
	if lostErr != nil {
		s.log.Warn("lost stream unavailable, serving found only", zap.Error(lostErr))
	}
	if foundErr != nil {
		s.log.Warn("found stream unavailable, serving lost only", zap.Error(foundErr))
	}

	return &Feed{
		Items:   Merge(lost, found, s.limit),
		Limit:   s.limit,
		Partial: lostErr != nil || foundErr != nil,
	}, nil
}

func (s *Service) fetch(ctx context.Context, kind items.Kind) ([]items.Item, error) {
	spec := items.DefaultFilter(kind)
	spec.PageSize = s.limit

	rs, err := s.items.Query(ctx, spec)
	if err != nil {
		return nil, err
	}
	return rs.Items, nil
}

// Merge combines two item collections into one ranked list: newest first by
// CreatedAt, ties broken by ID ascending, truncated to max. It is a pure
// function; the inputs are never mutated and identical inputs always yield
// an identical, identically-ordered result.
func Merge(a, b []items.Item, max int) []items.Item {
	merged := make([]items.Item, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)

	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		}
		return merged[i].ID < merged[j].ID
	})

	if max > 0 && len(merged) > max {
		merged = merged[:max]
	}
	return merged
}
