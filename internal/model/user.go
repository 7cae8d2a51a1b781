package model

type User struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Address        string  `json:"address"`
	GreenCoins     uint64  `json:"green_coins"`
	WasteDonatedKg float64 `json:"waste_donated_kg"`
	GreenStars     int     `json:"green_stars"`
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User User `json:"user"`
}

type GetUserRequest struct {
	ID string `json:"id"`
}

type GetUserResponse struct {
	User User `json:"user"`
}

type GetDryingUnitsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetDryingUnitsResponse struct {
	DryingUnits []User `json:"drying_units"`
}
