package entity

import (
	"time"

	"github.com/templetoayurveda/backend/pkg/enum"
)

type DutyStatus string

var (
	DutyPending             = enum.New(DutyStatus("PENDING"))
	DutyCompletionRequested = enum.New(DutyStatus("COMPLETION_REQUESTED"))
	DutyCompleted           = enum.New(DutyStatus("COMPLETED"))
	DutyRejected            = enum.New(DutyStatus("REJECTED"))
)

type VolunteerDuty struct {
	Base

	VolunteerID string
	Volunteer   User `gorm:"foreignKey:VolunteerID"`

	AssignedBy     string
	AssignedByUser User `gorm:"foreignKey:AssignedBy"`

	Title       string
	Description string
	Status      DutyStatus

	ReviewerID string
	ReviewedAt time.Time
	Comment    string

	RewardApplied bool
}

type VolunteerRequestStatus string

var (
	VolunteerRequestPending  = enum.New(VolunteerRequestStatus("PENDING_DU_APPROVAL"))
	VolunteerRequestAccepted = enum.New(VolunteerRequestStatus("ACCEPTED"))
	VolunteerRequestRejected = enum.New(VolunteerRequestStatus("REJECTED_BY_DU"))
)

// VolunteerRequest is a sevak applying to join a drying unit's roster. It is
// distinct from VolunteerDuty, which only exists after the roster join is
// accepted.
type VolunteerRequest struct {
	Base

	UserID string
	User   User `gorm:"foreignKey:UserID"`

	DryingUnitID string
	DryingUnit   User `gorm:"foreignKey:DryingUnitID"`

	AssignmentStatus VolunteerRequestStatus
	RejectionReason  string
}
