package entity

import (
	"github.com/templetoayurveda/backend/pkg/enum"
)

type WasteLogStatus string

var (
	WasteCollected  = enum.New(WasteLogStatus("COLLECTED"))
	WasteSegregated = enum.New(WasteLogStatus("SEGREGATED"))
	WasteProcessed  = enum.New(WasteLogStatus("PROCESSED"))
	WasteProduct    = enum.New(WasteLogStatus("PRODUCT"))
)

type WasteLog struct {
	Base

	UserID string
	User   User `gorm:"foreignKey:UserID"`

	AmountKg  float64
	WasteType string
	Status    WasteLogStatus

	// TraceToken is an opaque identifier shown to users. It is not a content
	// hash and carries no cryptographic guarantee.
	TraceToken string `gorm:"unique"`
}
