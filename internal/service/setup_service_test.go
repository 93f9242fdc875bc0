package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/internal/schema"
	appErrors "github.com/noah-isme/college-admin-api/pkg/errors"
)

type schemaRepoStub struct {
	applied []string
	fail    map[string]error
}

func (s *schemaRepoStub) Apply(_ context.Context, table schema.Table) error {
	s.applied = append(s.applied, table.Name)
	if err, ok := s.fail[table.Name]; ok {
		return fmt.Errorf("create table %s: %w", table.Name, err)
	}
	return nil
}

func TestSetupServiceRunAllSuccess(t *testing.T) {
	repo := &schemaRepoStub{}
	svc := NewSetupService(repo, NewMetricsService(), nil)

	result := svc.Run(context.Background())
	assert.Equal(t, SetupCompletedMessage, result.Message)
	require.Len(t, result.Results, len(schema.Provisioned()))
	for _, r := range result.Results {
		assert.Equal(t, models.TableStatusSuccess, r.Status)
		assert.Empty(t, r.Error)
	}
	assert.Equal(t, "Department", repo.applied[0])
}

func TestSetupServiceContinuesAfterFailure(t *testing.T) {
	storeErr := errors.New(`pq: relation "student" does not exist`)
	repo := &schemaRepoStub{fail: map[string]error{
		"Enrolled": appErrors.FromKind(appErrors.KindUnknown, storeErr),
	}}
	svc := NewSetupService(repo, nil, nil)

	result := svc.Run(context.Background())
	require.Len(t, result.Results, 9)
	assert.Len(t, repo.applied, 9)
	for _, r := range result.Results {
		if r.Table == "Enrolled" {
			assert.Equal(t, models.TableStatusError, r.Status)
			assert.Equal(t, storeErr.Error(), r.Error)
			continue
		}
		assert.Equal(t, models.TableStatusSuccess, r.Status, r.Table)
	}
}
