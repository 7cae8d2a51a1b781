package entity

import (
	"context"

	"github.com/templetoayurveda/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&RefreshToken{},
		&PickupRequest{},
		&VolunteerDuty{},
		&VolunteerRequest{},
		&WasteLog{},
		&ServiceRequest{},
		&Product{},
	)
}
