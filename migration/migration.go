package migration

import (
	"context"

	"github.com/templetoayurveda/backend/internal/entity"
)

// Migrate brings the database schema up to date.
func Migrate(ctx context.Context) error {
	return entity.MigrateTable(ctx)
}
