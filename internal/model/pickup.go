package model

type PickupRequest struct {
	ID                string  `json:"id"`
	RequesterType     string  `json:"requester_type"`
	RequesterID       string  `json:"requester_id"`
	DryingUnitID      string  `json:"drying_unit_id,omitempty"`
	WasteType         string  `json:"waste_type"`
	EstimatedWeightKg float64 `json:"estimated_weight_kg"`
	ScheduledDate     string  `json:"scheduled_date"`
	TimeSlot          string  `json:"time_slot"`
	Address           string  `json:"address,omitempty"`
	DriverName        string  `json:"driver_name,omitempty"`
	ProofImageURL     string  `json:"proof_image_url,omitempty"`
	Status            string  `json:"status"`
	CreatedAt         string  `json:"created_at"`
}

type CreatePickupRequest struct {
	WasteType         string  `json:"waste_type"`
	EstimatedWeightKg float64 `json:"estimated_weight_kg"`
	ScheduledDate     string  `json:"scheduled_date"`
	TimeSlot          string  `json:"time_slot"`
	Address           string  `json:"address"`
}

type CreatePickupResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type AcceptPickupRequest struct {
	ID         string `json:"id"`
	DriverName string `json:"driver_name"`
}

type AcceptPickupResponse struct{}

type RejectPickupRequest struct {
	ID string `json:"id"`
}

type RejectPickupResponse struct{}

type LoadPickupRequest struct {
	ID string `json:"id"`
}

type LoadPickupResponse struct{}

type CompletePickupRequest struct {
	ID            string `json:"id"`
	ProofImageURL string `json:"proof_image_url"`
}

type CompletePickupResponse struct{}

type GetPickupRequest struct {
	ID string `json:"id"`
}

type GetPickupResponse PickupRequest

type GetListPickupRequest struct {
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetListPickupResponse struct {
	PickupRequests []PickupRequest `json:"pickup_requests"`
}

type GetMyPickupsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetMyPickupsResponse struct {
	PickupRequests []PickupRequest `json:"pickup_requests"`
}
