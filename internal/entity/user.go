package entity

import (
	"github.com/templetoayurveda/backend/pkg/enum"
)

type GlobalRole string

var (
	RoleAdmin      = enum.New(GlobalRole("ADMIN"))
	RoleTemple     = enum.New(GlobalRole("TEMPLE"))
	RoleDryingUnit = enum.New(GlobalRole("DRYING_UNIT"))
	RoleUser       = enum.New(GlobalRole("USER"))
)

var (
	GlobalAdminRoles = []GlobalRole{RoleAdmin}
	PickupUnitRoles  = []GlobalRole{RoleAdmin, RoleDryingUnit}
	RequesterRoles   = []GlobalRole{RoleUser, RoleTemple}
)

// User carries the login identity and the reward account. Only the reward
// ledger mutates the reward fields.
type User struct {
	Base
	Email          string `gorm:"unique"`
	HashedPassword string
	Name           string
	Role           GlobalRole `gorm:"default:USER"`
	Address        string

	GreenCoins     uint64
	WasteDonatedKg float64
	GreenStars     int
}
