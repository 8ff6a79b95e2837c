package items

import (
	"context"

	"go.uber.org/zap"
)

// Service is the application-facing surface over the item store: the query
// side shapes and validates filters before they hit the wire, the mutation
// side rejects invalid drafts locally before spending a round trip.
type Service struct {
	repo *Repository
	log  *zap.Logger
}

// NewService creates an item service backed by the store repository.
func NewService(repo *Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Query retrieves items for a filter specification. The spec is
// canonicalized (search trimmed, defaults filled) and validated first.
func (s *Service) Query(ctx context.Context, spec FilterSpec) (*ResultSet, error) {
	spec = spec.Canonical()
	if err := ValidateFilterSpec(spec); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, spec)
}

// GetByID retrieves a single item; a missing item surfaces as ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (*Item, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// MyItems retrieves the current session's own reports.
func (s *Service) MyItems(ctx context.Context, kind Kind, status Status) (*ResultSet, error) {
	return s.repo.MyItems(ctx, kind, status)
}

// Create reports a new item. Required fields are checked locally so a bad
// draft fails synchronously without any network call.
func (s *Service) Create(ctx context.Context, req *CreateItemRequest) (*Item, error) {
	if err := ValidateCreateItemRequest(req); err != nil {
		return nil, err
	}

	item, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.Info("item reported", zap.String("id", item.ID), zap.String("kind", string(item.Kind)))
	return item, nil
}

// Update applies a partial update. The caller is expected to have checked
// CanMutate already; the store is still the authoritative enforcement point
// and may answer ErrForbidden regardless.
func (s *Service) Update(ctx context.Context, id string, req *UpdateItemRequest) (*Item, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	if err := ValidateUpdateItemRequest(req); err != nil {
		return nil, err
	}

	item, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.log.Info("item updated", zap.String("id", id))
	return item, nil
}

// UpdateStatus changes only the lifecycle status of an item.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Item, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	if err := ValidateStatus(status); err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Delete removes an item. Irreversible; same guard discipline as Update.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("item deleted", zap.String("id", id))
	return nil
}
