package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/college-admin-api/internal/schema"
	"github.com/noah-isme/college-admin-api/pkg/database"
)

// SchemaRepository applies table DDL.
type SchemaRepository struct {
	store *database.Store
}

// NewSchemaRepository constructs the repository.
func NewSchemaRepository(store *database.Store) *SchemaRepository {
	return &SchemaRepository{store: store}
}

// Apply creates one table if it does not exist yet.
func (r *SchemaRepository) Apply(ctx context.Context, table schema.Table) error {
	if _, err := execAffected(ctx, r.store, "schema.create", table.DDL); err != nil {
		return fmt.Errorf("create table %s: %w", table.Name, err)
	}
	return nil
}
