package entity

import (
	"database/sql"
	"time"

	"github.com/templetoayurveda/backend/pkg/enum"
)

type PickupStatus string

var (
	PickupPending   = enum.New(PickupStatus("PENDING"))
	PickupAccepted  = enum.New(PickupStatus("ACCEPTED"))
	PickupLoaded    = enum.New(PickupStatus("LOADED"))
	PickupCompleted = enum.New(PickupStatus("COMPLETED"))
	PickupRejected  = enum.New(PickupStatus("REJECTED"))
)

type RequesterType string

var (
	RequesterUser   = enum.New(RequesterType("USER"))
	RequesterTemple = enum.New(RequesterType("TEMPLE"))
)

type PickupRequest struct {
	Base

	RequesterType RequesterType
	RequesterID   string
	Requester     User `gorm:"foreignKey:RequesterID"`

	DryingUnitID sql.NullString
	DryingUnit   User `gorm:"foreignKey:DryingUnitID"`

	WasteType         string
	EstimatedWeightKg float64
	ScheduledDate     time.Time
	TimeSlot          string
	Address           string
	DriverName        string
	ProofImageURL     string

	Status PickupStatus

	// RewardApplied guards the reward credit against a replayed completion.
	RewardApplied bool
}
