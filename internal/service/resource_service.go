package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/davidmichaelmontiza/Campus-Information-System/internal/models"
	"github.com/davidmichaelmontiza/Campus-Information-System/internal/validation"
	appErrors "github.com/davidmichaelmontiza/Campus-Information-System/pkg/errors"
)

// Store is the persistence contract of one entity. Absent records come back as nil.
type Store[T any, PT models.Record[T]] interface {
	Create(ctx context.Context, record PT) error
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (PT, error)
	UpdateByID(ctx context.Context, id string, record PT) (PT, error)
	DeleteByID(ctx context.Context, id string) (PT, error)
}

// ResourceService implements validate, persist and error translation for one entity.
type ResourceService[T any, PT models.Record[T]] struct {
	resource  Resource
	store     Store[T, PT]
	validator *validation.Validator
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewResourceService wires a resource service. cache and metrics may be nil.
func NewResourceService[T any, PT models.Record[T]](resource Resource, store Store[T, PT], validator *validation.Validator, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *ResourceService[T, PT] {
	if validator == nil {
		validator = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceService[T, PT]{
		resource:  resource,
		store:     store,
		validator: validator,
		cache:     cache,
		metrics:   metrics,
		logger:    logger.With(zap.String("resource", resource.Name)),
	}
}

// Resource returns the entity metadata.
func (s *ResourceService[T, PT]) Resource() Resource {
	return s.resource
}

// List returns every record of the entity.
func (s *ResourceService[T, PT]) List(ctx context.Context) ([]T, error) {
	key := s.listKey()
	var cached []T
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	start := time.Now()
	items, err := s.store.FindAll(ctx)
	s.observe("list", start)
	if err != nil {
		return nil, s.persistenceError("list", err)
	}

	_ = s.cache.Set(ctx, key, items, 0)
	return items, nil
}

// Get returns the record with id or a not-found error.
func (s *ResourceService[T, PT]) Get(ctx context.Context, id string) (PT, error) {
	key := s.itemKey(id)
	var cached T
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return &cached, nil
	}

	start := time.Now()
	record, err := s.store.FindByID(ctx, id)
	s.observe("get", start)
	if err != nil {
		return nil, s.persistenceError("get", err)
	}
	if record == nil {
		return nil, s.notFound()
	}

	_ = s.cache.Set(ctx, key, record, 0)
	return record, nil
}

// Create validates body and stores it as a new record.
func (s *ResourceService[T, PT]) Create(ctx context.Context, body []byte) (PT, error) {
	record, err := s.decode(body)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	err = s.store.Create(ctx, record)
	s.observe("create", start)
	if err != nil {
		return nil, s.persistenceError("create", err)
	}

	s.invalidate(ctx)
	return record, nil
}

// Update validates body and replaces the record with id.
func (s *ResourceService[T, PT]) Update(ctx context.Context, id string, body []byte) (PT, error) {
	record, err := s.decode(body)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	updated, err := s.store.UpdateByID(ctx, id, record)
	s.observe("update", start)
	if err != nil {
		return nil, s.persistenceError("update", err)
	}
	if updated == nil {
		return nil, s.notFound()
	}

	s.invalidate(ctx)
	return updated, nil
}

// Delete removes the record with id and returns it.
func (s *ResourceService[T, PT]) Delete(ctx context.Context, id string) (PT, error) {
	start := time.Now()
	deleted, err := s.store.DeleteByID(ctx, id)
	s.observe("delete", start)
	if err != nil {
		return nil, s.persistenceError("delete", err)
	}
	if deleted == nil {
		return nil, s.notFound()
	}

	s.invalidate(ctx)
	return deleted, nil
}

func (s *ResourceService[T, PT]) decode(body []byte) (PT, error) {
	var record T
	if err := s.validator.Decode(body, &record, s.resource.Messages); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			return nil, appErrors.Validation(verrs.Messages())
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return &record, nil
}

func (s *ResourceService[T, PT]) notFound() error {
	return appErrors.Clone(appErrors.ErrNotFound, s.resource.NotFoundMessage)
}

func (s *ResourceService[T, PT]) persistenceError(op string, err error) error {
	s.logger.Warn("store operation failed", zap.String("operation", op), zap.Error(err))
	return appErrors.Persistence(err)
}

func (s *ResourceService[T, PT]) observe(op string, start time.Time) {
	s.metrics.ObserveDBQuery(s.resource.Name+"."+op, time.Since(start))
}

func (s *ResourceService[T, PT]) invalidate(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, cachePrefix+s.resource.Name+":*")
}

func (s *ResourceService[T, PT]) listKey() string {
	return cachePrefix + s.resource.Name + ":list"
}

func (s *ResourceService[T, PT]) itemKey(id string) string {
	return cachePrefix + s.resource.Name + ":item:" + id
}
