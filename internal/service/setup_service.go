package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/internal/schema"
)

// SetupCompletedMessage is returned whatever the per-table outcome.
const SetupCompletedMessage = "Table creation completed"

type schemaRepository interface {
	Apply(ctx context.Context, table schema.Table) error
}

// SetupService provisions the schema one table at a time.
type SetupService struct {
	repo    schemaRepository
	metrics *MetricsService
	logger  *zap.Logger
}

// NewSetupService constructs a SetupService.
func NewSetupService(repo schemaRepository, metrics *MetricsService, logger *zap.Logger) *SetupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SetupService{repo: repo, metrics: metrics, logger: logger}
}

// Run creates every provisioned table that does not exist yet, in foreign
// key order. A failing table does not stop the remaining ones.
func (s *SetupService) Run(ctx context.Context) models.SetupResult {
	tables := schema.Provisioned()
	results := make([]models.TableStatus, 0, len(tables))
	for _, table := range tables {
		status := models.TableStatus{Table: table.Name, Status: models.TableStatusSuccess}
		if err := s.repo.Apply(ctx, table); err != nil {
			status.Status = models.TableStatusError
			status.Error = rootCause(err).Error()
			s.logger.Warn("table creation failed", zap.String("table", table.Name), zap.Error(err))
		}
		s.metrics.RecordSetupTable(table.Name, status.Status)
		results = append(results, status)
	}
	return models.SetupResult{Message: SetupCompletedMessage, Results: results}
}

// rootCause returns the innermost error, which carries the store's own text.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
