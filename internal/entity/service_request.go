package entity

import (
	"time"

	"github.com/templetoayurveda/backend/pkg/enum"
)

type ServiceRequestStatus string

var (
	ServiceRequestPending  = enum.New(ServiceRequestStatus("PENDING"))
	ServiceRequestResolved = enum.New(ServiceRequestStatus("RESOLVED"))
)

type ServiceRequestType string

var (
	ServiceRequestService       = enum.New(ServiceRequestType("SERVICE"))
	ServiceRequestActivityProof = enum.New(ServiceRequestType("ACTIVITY_PROOF"))
)

type ServiceRequest struct {
	Base

	TempleID string
	Temple   User `gorm:"foreignKey:TempleID"`

	Type        ServiceRequestType
	Title       string
	Description string
	ImageURL    string

	Status     ServiceRequestStatus
	ResolverID string
	ResolvedAt time.Time
}
