package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/college-admin-api/pkg/errors"
)

// statsCachePattern matches every cached statistics snapshot.
const statsCachePattern = "stats:*"

// resource carries the validation, failure logging and cache invalidation
// shared by the CRUD services.
type resource struct {
	entity    string
	plural    string
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

func newResource(entity, plural string, validate *validator.Validate, cache *CacheService, logger *zap.Logger) resource {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return resource{entity: entity, plural: plural, validator: validate, cache: cache, logger: logger}
}

func (r resource) validate(payload interface{}) error {
	if err := r.validator.Struct(payload); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("Invalid %s payload", r.entity))
	}
	return nil
}

// requireKey rejects blank key components.
func (r resource) requireKey(parts ...string) error {
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("Invalid %s identifier", r.entity))
		}
	}
	return nil
}

func (r resource) failure(op string, err error, message string) error {
	r.logger.Error("data access failed",
		zap.String("entity", r.entity),
		zap.String("op", op),
		zap.String("kind", appErrors.KindOf(err).String()),
		zap.Error(err),
	)
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

func (r resource) listFailed(err error) error {
	return r.failure("list", err, "Failed to fetch "+r.plural)
}

func (r resource) createFailed(err error) error {
	return r.failure("create", err, "Failed to add "+r.entity)
}

func (r resource) updateFailed(err error) error {
	return r.failure("update", err, "Failed to update "+r.entity)
}

func (r resource) deleteFailed(err error) error {
	return r.failure("delete", err, "Failed to delete "+r.entity)
}

// written runs after every successful write.
func (r resource) written(ctx context.Context, op string, affected int64) {
	if affected == 0 {
		r.logger.Info("no rows affected", zap.String("entity", r.entity), zap.String("op", op))
	}
	// failures are logged by the cache service and never fail the write
	_ = r.cache.Invalidate(ctx, statsCachePattern)
}

// blankToNil maps empty or whitespace-only strings to nil.
func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
